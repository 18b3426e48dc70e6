// Package libcluster binds the Simultaneous Clustering Model from the
// native libcluster library through cgo.
//
// Build the C shim first (make -C shim, which writes shim/build/libscm.a),
// then build with CGO_ENABLED=1 and -tags libcluster with libcluster on
// the linker path. Without the tag the engine reports itself unavailable
// on every call.
//
// The sparse option is forwarded to the shim, which drops it: libcluster's
// learnSCM has no sparse variant.
package libcluster

// Name is the engine's registered name.
const Name = "libcluster"

// Engine is the native SCM engine. It holds no state; every call copies
// its input into C memory and its results back out.
type Engine struct{}

// New returns the native engine.
func New() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string { return Name }
