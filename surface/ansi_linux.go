//go:build linux

package surface

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// pollTimeoutMs bounds each Read so stopCh and the escape timeout are observed
const pollTimeoutMs = 100

// fallbackCols/fallbackRows are reported when the output is not a tty
const (
	fallbackCols = 80
	fallbackRows = 24
)

// ttyBackend drives a pair of file descriptors, normally stdin/stdout
type ttyBackend struct {
	in, out *os.File
	saved   *term.State
	buf     [512]byte

	winch    chan os.Signal
	winchEnd chan struct{}
}

func newBackend() Backend {
	return newTTYBackend(os.Stdin, os.Stdout)
}

func newTTYBackend(in, out *os.File) *ttyBackend {
	return &ttyBackend{in: in, out: out}
}

func (b *ttyBackend) Init() error {
	fd := int(b.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: %s", ErrNotTerminal, b.in.Name())
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	b.saved = saved
	return nil
}

func (b *ttyBackend) Fini() {
	if b.winch != nil {
		signal.Stop(b.winch)
		close(b.winchEnd)
		b.winch = nil
	}
	if b.saved != nil {
		term.Restore(int(b.in.Fd()), b.saved)
		b.saved = nil
	}
}

func (b *ttyBackend) Size() (int, int) {
	cols, rows, ok := winsize(b.out)
	if !ok {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}

func (b *ttyBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// Read waits up to pollTimeoutMs for input; a timeout returns (nil, nil)
// The returned slice is reused by the next call. A closed input returns io.EOF
func (b *ttyBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	fd := int(b.in.Fd())
	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, pollTimeoutMs)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return nil, fmt.Errorf("poll: %w", err)
		case n == 0:
			return nil, nil
		}

		rev := fds[0].Revents
		if rev&unix.POLLNVAL != 0 {
			return nil, io.EOF
		}
		if rev&unix.POLLIN == 0 && rev&(unix.POLLHUP|unix.POLLERR) != 0 {
			return nil, io.EOF
		}

		rn, err := unix.Read(fd, b.buf[:])
		switch {
		case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
			continue
		case err != nil:
			return nil, fmt.Errorf("read: %w", err)
		case rn == 0:
			return nil, io.EOF
		}
		return b.buf[:rn], nil
	}
}

// SetResizeHandler reports the size read on each SIGWINCH until Fini
// Signals arriving while the handler runs collapse into one
func (b *ttyBackend) SetResizeHandler(handler func(cols, rows int)) {
	b.winch = make(chan os.Signal, 1)
	b.winchEnd = make(chan struct{})
	signal.Notify(b.winch, syscall.SIGWINCH)

	go func(sig <-chan os.Signal, end <-chan struct{}) {
		for {
			select {
			case <-end:
				return
			case <-sig:
				if cols, rows, ok := winsize(b.out); ok {
					handler(cols, rows)
				}
			}
		}
	}(b.winch, b.winchEnd)
}

// winsize queries the terminal dimensions of f
func winsize(f *os.File) (cols, rows int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}

// resetTerminalMode puts the controlling tty back in cooked mode, best effort
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag |= unix.ICRNL
	t.Oflag |= unix.OPOST
	unix.IoctlSetTermios(fd, unix.TCSETS, t)
}
