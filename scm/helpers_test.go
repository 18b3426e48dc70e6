package scm

import (
	"io"

	"github.com/teranos/scm/host"
)

// fakeRedirector records hijack/restore calls in order.
type fakeRedirector struct {
	events     *[]string
	hijackErr  error
	restoreErr error
	acquired   int
	released   int
	console    io.Writer
}

func (f *fakeRedirector) Hijack(console io.Writer) (func() error, error) {
	if f.hijackErr != nil {
		return nil, f.hijackErr
	}
	f.acquired++
	f.console = console
	f.record("hijack")
	done := false
	return func() error {
		if done {
			return nil
		}
		done = true
		f.released++
		f.record("restore")
		return f.restoreErr
	}, nil
}

func (f *fakeRedirector) record(event string) {
	if f.events != nil {
		*f.events = append(*f.events, event)
	}
}

// funcEngine adapts a function to Engine and counts calls.
type funcEngine struct {
	calls int
	fn    func(GroupedMatrixSet, Configuration) (*ResultSet, error)
}

func (e *funcEngine) Name() string { return "func" }

func (e *funcEngine) LearnSCM(x GroupedMatrixSet, cfg Configuration) (*ResultSet, error) {
	e.calls++
	return e.fn(x, cfg)
}

// item builds an n x d host matrix with entries 1..n*d.
func item(n, d int) *host.Array {
	data := make([]float64, n*d)
	for i := range data {
		data[i] = float64(i + 1)
	}
	return host.NewMatrix(n, d, data)
}

func groups(gs ...[]host.Value) host.Value {
	outer := make([]host.Value, len(gs))
	for j, g := range gs {
		outer[j] = host.NewCell(g...)
	}
	return host.NewCell(outer...)
}
