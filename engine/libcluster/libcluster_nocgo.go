//go:build !cgo || !libcluster

package libcluster

import (
	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/scm"
)

// Available reports whether the native library is linked in.
const Available = false

// LearnSCM returns an error when built without the libcluster tag.
func (e *Engine) LearnSCM(x scm.GroupedMatrixSet, cfg scm.Configuration) (*scm.ResultSet, error) {
	return nil, errors.WithHint(
		errors.New("SCM clustering not available: built without libcluster support"),
		"run make -C engine/libcluster/shim and rebuild with CGO_ENABLED=1 -tags libcluster, or use --engine echo")
}
