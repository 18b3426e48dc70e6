package scm

import (
	"math"

	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/host"
)

// Recognized option keys.
const (
	OptTrunc   = "trunc"
	OptPrior   = "prior"
	OptVerbose = "verbose"
	OptSparse  = "sparse"
	OptThreads = "threads"
)

var recognizedOptions = map[string]bool{
	OptTrunc:   true,
	OptPrior:   true,
	OptVerbose: true,
	OptSparse:  true,
	OptThreads: true,
}

// maxCount bounds integer options; the engine takes 32-bit counts.
const maxCount = math.MaxUint32

// ParseOptions overlays a loosely-typed options struct on the defaults.
// A nil or empty options value yields DefaultConfiguration. Unrecognized
// keys are ignored; see UnrecognizedOptions.
func ParseOptions(opts host.Value) (Configuration, error) {
	cfg := DefaultConfiguration()
	if opts == nil || opts.Kind() == host.KindEmpty {
		return cfg, nil
	}

	s, ok := opts.(host.Struct)
	if !ok {
		return Configuration{}, errors.NewConfigurationf("options must be a struct, got %s", host.Describe(opts))
	}

	var err error
	if v, ok := s.Field(OptTrunc); ok {
		if cfg.Trunc, err = parseCount(OptTrunc, v, 1); err != nil {
			return Configuration{}, err
		}
	}
	if v, ok := s.Field(OptPrior); ok {
		if cfg.Prior, err = parsePositive(OptPrior, v); err != nil {
			return Configuration{}, err
		}
	}
	if v, ok := s.Field(OptVerbose); ok {
		if cfg.Verbose, err = parseFlag(OptVerbose, v); err != nil {
			return Configuration{}, err
		}
	}
	if v, ok := s.Field(OptSparse); ok {
		if cfg.Sparse, err = parseFlag(OptSparse, v); err != nil {
			return Configuration{}, err
		}
	}
	if v, ok := s.Field(OptThreads); ok {
		if cfg.Threads, err = parseCount(OptThreads, v, 0); err != nil {
			return Configuration{}, err
		}
	}

	return cfg, nil
}

// UnrecognizedOptions lists option keys that ParseOptions ignores.
func UnrecognizedOptions(opts host.Value) []string {
	s, ok := opts.(host.Struct)
	if !ok {
		return nil
	}
	var ignored []string
	for _, name := range s.Fields() {
		if !recognizedOptions[name] {
			ignored = append(ignored, name)
		}
	}
	return ignored
}

func scalarOf(name string, v host.Value) (float64, error) {
	if !host.IsScalar(v) {
		return 0, errors.NewConfigurationf("options.%s must be a scalar, got %s", name, host.Describe(v))
	}
	f := v.(host.Matrix).At(0, 0)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.NewConfigurationf("options.%s must be finite, got %v", name, f)
	}
	return f, nil
}

func parseCount(name string, v host.Value, min float64) (uint, error) {
	if v.Kind() == host.KindLogical {
		return 0, errors.NewConfigurationf("options.%s must be numeric, got logical", name)
	}
	f, err := scalarOf(name, v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errors.NewConfigurationf("options.%s must be an integer, got %v", name, f)
	}
	if f < min {
		return 0, errors.NewConfigurationf("options.%s must be >= %v, got %v", name, min, f)
	}
	if f > maxCount {
		return 0, errors.NewConfigurationf("options.%s must be <= %d, got %v", name, uint64(maxCount), f)
	}
	return uint(f), nil
}

func parsePositive(name string, v host.Value) (float64, error) {
	if v.Kind() == host.KindLogical {
		return 0, errors.NewConfigurationf("options.%s must be numeric, got logical", name)
	}
	f, err := scalarOf(name, v)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, errors.NewConfigurationf("options.%s must be > 0, got %v", name, f)
	}
	return f, nil
}

// parseFlag accepts a logical scalar or a numeric scalar (0 = false).
func parseFlag(name string, v host.Value) (bool, error) {
	f, err := scalarOf(name, v)
	if err != nil {
		return false, err
	}
	return f != 0, nil
}
