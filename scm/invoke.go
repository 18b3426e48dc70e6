package scm

import (
	"context"
	"fmt"
	"io"

	"github.com/teranos/scm/errors"
)

// Engine runs the Simultaneous Clustering Model. Implementations may write
// progress text to the process stdout; Invoke forwards it to the caller.
// Implementations may panic; Invoke recovers and reports an engine error.
type Engine interface {
	Name() string
	LearnSCM(x GroupedMatrixSet, cfg Configuration) (*ResultSet, error)
}

// Redirector installs a scoped redirection of the engine's output stream.
// restore must be safe to call more than once.
type Redirector interface {
	Hijack(console io.Writer) (restore func() error, err error)
}

// Invoke calls the engine with its output redirected to console for the
// duration of the call. The redirection is released on every exit path,
// before any error is returned. No ResultSet is returned on failure.
//
// ctx is only consulted before the engine starts; a running engine call
// cannot be cancelled.
func Invoke(ctx context.Context, engine Engine, redirector Redirector, x GroupedMatrixSet, cfg Configuration, console io.Writer) (rs *ResultSet, err error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.MarkEngine(errors.Wrap(err, "call abandoned before engine start"))
	}

	restore, err := redirector.Hijack(console)
	if err != nil {
		return nil, errors.MarkEngine(err)
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil && err == nil {
			rs, err = nil, errors.MarkEngine(restoreErr)
		}
	}()

	return learn(engine, x, cfg)
}

// learn isolates engine failures: returned errors keep their message,
// panics become errors. Result validation calls engine accessors, so it
// runs under the same recover.
func learn(engine Engine, x GroupedMatrixSet, cfg Configuration) (rs *ResultSet, err error) {
	defer func() {
		if r := recover(); r != nil {
			rs = nil
			if e, ok := r.(error); ok {
				err = errors.MarkEngine(e)
				return
			}
			err = errors.MarkEngine(errors.New(fmt.Sprint(r)))
		}
	}()

	rs, err = engine.LearnSCM(x, cfg)
	if err != nil {
		return nil, errors.MarkEngine(err)
	}
	if rs == nil {
		return nil, errors.MarkEngine(errors.Newf("%s returned no result", engine.Name()))
	}
	if err := rs.Validate(x); err != nil {
		return nil, errors.MarkEngine(errors.Wrapf(err, "%s returned an inconsistent result", engine.Name()))
	}
	return rs, nil
}
