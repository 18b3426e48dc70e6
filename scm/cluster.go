package scm

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/scm/diag"
	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/host"
	"github.com/teranos/scm/logger"
)

// Adapter runs cluster calls against one engine. It holds no per-call
// state and is safe for concurrent use; calls serialize on the output
// redirection around the engine call only.
type Adapter struct {
	engine     Engine
	redirector Redirector
	console    io.Writer
	factory    host.Factory
	logger     *zap.SugaredLogger
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithRedirector replaces the stdout redirection (default diag.Stdout).
func WithRedirector(r Redirector) AdapterOption {
	return func(a *Adapter) {
		a.redirector = r
	}
}

// WithConsole sets where engine output goes while a call runs. The default
// (nil) is the terminal the process was started on.
func WithConsole(w io.Writer) AdapterOption {
	return func(a *Adapter) {
		a.console = w
	}
}

// WithFactory sets the host that output values are built in
// (default host.Native).
func WithFactory(f host.Factory) AdapterOption {
	return func(a *Adapter) {
		a.factory = f
	}
}

// WithLogger sets the adapter's logger.
func WithLogger(l *zap.SugaredLogger) AdapterOption {
	return func(a *Adapter) {
		a.logger = l
	}
}

// NewAdapter creates an adapter for engine.
func NewAdapter(engine Engine, opts ...AdapterOption) (*Adapter, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}

	a := &Adapter{
		engine:     engine,
		redirector: diag.Stdout,
		factory:    host.Native,
		logger:     logger.ComponentLogger("scm.adapter"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Cluster runs one call: cluster(X, options) -> (qY, qZ, weights, classes,
// means, covariances). options may be nil. Any failure aborts the whole
// call; the error is classified as input shape, configuration or engine
// (see the errors package).
func (a *Adapter) Cluster(ctx context.Context, x host.Value, options host.Value) (*Output, error) {
	ctx = logger.WithCallID(ctx, uuid.NewString())
	log := a.logger.With(logger.FieldsFromContext(ctx)...).With(logger.FieldEngine, a.engine.Name())

	out, err := a.cluster(ctx, log, x, options)
	if err != nil {
		// the caller owns reporting the error
		log.Debugw("cluster call failed",
			logger.FieldError, err.Error(),
			logger.FieldErrorClass, errors.Class(err))
		return nil, err
	}
	return out, nil
}

func (a *Adapter) cluster(ctx context.Context, log *zap.SugaredLogger, x, options host.Value) (*Output, error) {
	set, err := MarshalInput(x)
	if err != nil {
		return nil, err
	}
	if logger.Enabled(logger.OutputCallSummary) {
		log.Infow("input marshalled",
			logger.FieldGroups, set.Groups(),
			logger.FieldRows, set.Observations(),
			logger.FieldDims, set.Dims())
	}

	cfg, err := ParseOptions(options)
	if err != nil {
		return nil, err
	}
	if ignored := UnrecognizedOptions(options); len(ignored) > 0 {
		log.Warnw("ignoring unrecognized options", logger.FieldIgnored, ignored)
	}
	log.Debugw("options parsed",
		logger.FieldTrunc, cfg.Trunc,
		logger.FieldPrior, cfg.Prior,
		logger.FieldVerbose, cfg.Verbose,
		logger.FieldSparse, cfg.Sparse,
		logger.FieldThreads, cfg.Threads)

	if logger.Enabled(logger.OutputRedirect) {
		log.Debugw("redirecting engine output")
	}
	start := time.Now()
	rs, err := Invoke(ctx, a.engine, a.redirector, set, cfg, a.console)
	if logger.Enabled(logger.OutputRedirect) {
		log.Debugw("engine output restored")
	}
	if err != nil {
		return nil, err
	}
	if logger.Enabled(logger.OutputTiming) {
		log.Infow("engine finished",
			logger.FieldDurationMS, time.Since(start).Milliseconds(),
			logger.FieldClasses, rs.T(),
			logger.FieldClusters, rs.K())
	}

	return MarshalOutput(rs, a.factory)
}
