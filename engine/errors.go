package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/halfblock/surface"
)

var (
	ErrCanvasTooLarge     = errors.New("engine: canvas exceeds surface bounds")
	ErrNotConstructed     = errors.New("engine: canvas not constructed")
	ErrAlreadyConstructed = errors.New("engine: canvas already constructed")
	ErrPairCapacity       = errors.New("engine: attribute pair capacity exhausted")
	ErrColorRange         = errors.New("engine: color outside palette")
	ErrStartAborted       = errors.New("engine: start hook aborted")
	ErrLoopRunning        = errors.New("engine: loop already running")
	ErrLoopStopped        = errors.New("engine: loop stopped")
)

// PairError reports a pair that could not be allocated
// Raised as a panic from PairCache.Resolve: rendering cannot continue with aliased colors
type PairError struct {
	Fg, Bg surface.Color
	Key    int
	Err    error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("pair (fg %d, bg %d) key %d: %v", e.Fg, e.Bg, e.Key, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}
