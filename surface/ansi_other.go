//go:build !linux

package surface

import "os"

// stubBackend refuses to initialize; use TcellSurface on these platforms
type stubBackend struct{}

func newBackend() Backend { return stubBackend{} }

func (stubBackend) Init() error { return ErrNotTerminal }

func (stubBackend) Fini() {}

func (stubBackend) Size() (int, int) { return 80, 24 }

func (stubBackend) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stubBackend) Read(<-chan struct{}) ([]byte, error) { return nil, ErrNotTerminal }

func resetTerminalMode() {}
