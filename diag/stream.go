// Package diag redirects a process-wide output stream (normally stdout) to
// a caller-supplied writer for a bounded window.
//
// Native engines print progress with printf/std::cout, which writes to file
// descriptor 1 and bypasses any Go-level writer. Hijack points that
// descriptor at a pipe, pumps the pipe into the caller's console, and the
// returned restore function puts the original descriptor back.
//
// A Stream is a single global resource: Hijack blocks while another hijack
// is active, so concurrent calls are serialized around the engine call.
package diag

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/teranos/scm/errors"
)

// Stream is a redirectable output stream.
type Stream struct {
	target *os.File

	// held from Hijack until restore
	mu sync.Mutex

	acquired atomic.Int64
	released atomic.Int64
	active   atomic.Bool
}

// Stats reports how often a stream was hijacked and restored.
type Stats struct {
	Acquired int64
	Released int64
	Active   bool
}

// Stdout is the process standard output.
var Stdout = NewStream(os.Stdout)

// NewStream wraps target so it can be hijacked.
func NewStream(target *os.File) *Stream {
	return &Stream{target: target}
}

// Stats returns acquisition counters.
func (s *Stream) Stats() Stats {
	return Stats{
		Acquired: s.acquired.Load(),
		Released: s.released.Load(),
		Active:   s.active.Load(),
	}
}

// Hijack redirects everything written to the stream into console until the
// returned restore function is called. A nil console (or the stream's own
// file) means "the stream's original destination": output still reaches
// the terminal, but only through the pump.
//
// restore is safe to call more than once; only the first call has effect.
func (s *Stream) Hijack(console io.Writer) (restore func() error, err error) {
	s.mu.Lock()

	r, w, err := os.Pipe()
	if err != nil {
		s.mu.Unlock()
		return nil, errors.Wrap(err, "failed to create diagnostic pipe")
	}

	saved, err := s.swap(w)
	if err != nil {
		r.Close()
		w.Close()
		s.mu.Unlock()
		return nil, errors.Wrap(err, "failed to redirect output stream")
	}

	dst := console
	if dst == nil || dst == io.Writer(s.target) {
		dst = saved.writer
	}

	done := make(chan error, 1)
	go func() {
		_, copyErr := io.Copy(dst, r)
		done <- copyErr
	}()

	s.acquired.Add(1)
	s.active.Store(true)

	var once sync.Once
	var restoreErr error
	restore = func() error {
		once.Do(func() {
			defer s.mu.Unlock()

			unswapErr := s.unswap(saved)
			w.Close()
			if unswapErr != nil {
				// the descriptor still writes into the pipe, so the pump
				// would never see EOF
				r.Close()
			}
			copyErr := <-done
			r.Close()
			saved.close()

			s.active.Store(false)
			s.released.Add(1)

			switch {
			case unswapErr != nil:
				restoreErr = errors.Wrap(unswapErr, "failed to restore output stream")
			case copyErr != nil:
				restoreErr = errors.Wrap(copyErr, "failed to forward diagnostic output")
			}
		})
		return restoreErr
	}
	return restore, nil
}
