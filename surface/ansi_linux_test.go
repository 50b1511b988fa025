//go:build linux

package surface

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"
)

func newPipeBackend(t *testing.T) (*ttyBackend, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return newTTYBackend(r, w), w
}

func TestTTYBackendReadData(t *testing.T) {
	b, w := newPipeBackend(t)
	if _, err := w.Write([]byte("ab")); err != nil {
		t.Fatal(err)
	}

	data, err := b.Read(make(chan struct{}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != "ab" {
		t.Errorf("Expected %q, got %q", "ab", data)
	}
}

func TestTTYBackendReadTimeout(t *testing.T) {
	b, _ := newPipeBackend(t)

	start := time.Now()
	data, err := b.Read(make(chan struct{}))
	if data != nil || err != nil {
		t.Errorf("Expected (nil, nil) on timeout, got (%q, %v)", data, err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected Read to return after the poll timeout, took %v", elapsed)
	}
}

func TestTTYBackendReadClosedInput(t *testing.T) {
	b, w := newPipeBackend(t)
	w.Close()

	// A hung-up input must not look like a timeout, or the reader spins forever
	for i := 0; i < 3; i++ {
		data, err := b.Read(make(chan struct{}))
		if !errors.Is(err, io.EOF) {
			t.Fatalf("read %d: Expected io.EOF, got (%q, %v)", i, data, err)
		}
	}
}

func TestTTYBackendInitRejectsPipe(t *testing.T) {
	b, _ := newPipeBackend(t)
	if err := b.Init(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
	if cols, rows := b.Size(); cols != fallbackCols || rows != fallbackRows {
		t.Errorf("Expected fallback size %dx%d, got %dx%d", fallbackCols, fallbackRows, cols, rows)
	}
}
