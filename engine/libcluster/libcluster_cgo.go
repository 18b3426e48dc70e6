//go:build cgo && libcluster

package libcluster

/*
#cgo LDFLAGS: -L${SRCDIR}/shim/build -lscm -lcluster -lstdc++
#cgo CFLAGS: -I${SRCDIR}/include

#include <stdlib.h>
#include "scm.h"
*/
import "C"
import (
	"unsafe"

	"gonum.org/v1/gonum/mat"

	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/scm"
)

// Available reports whether the native library is linked in.
const Available = true

// LearnSCM copies x into C memory, runs libcluster, and copies every result
// array back into Go before freeing it.
func (e *Engine) LearnSCM(x scm.GroupedMatrixSet, cfg scm.Configuration) (*scm.ResultSet, error) {
	J, D := x.Groups(), x.Dims()
	if J == 0 || D == 0 {
		return nil, errors.New("no observations")
	}

	nItems := 0
	for j := 0; j < J; j++ {
		nItems += x.Items(j)
	}
	nObs := x.Observations()

	cData := (*C.double)(C.malloc(C.size_t(nObs*D) * C.size_t(unsafe.Sizeof(C.double(0)))))
	cItems := (*C.uint)(C.malloc(C.size_t(J) * C.size_t(unsafe.Sizeof(C.uint(0)))))
	cRows := (*C.uint)(C.malloc(C.size_t(nItems) * C.size_t(unsafe.Sizeof(C.uint(0)))))
	defer C.free(unsafe.Pointer(cData))
	defer C.free(unsafe.Pointer(cItems))
	defer C.free(unsafe.Pointer(cRows))

	data := unsafe.Slice((*float64)(unsafe.Pointer(cData)), nObs*D)
	items := unsafe.Slice((*uint32)(unsafe.Pointer(cItems)), J)
	rows := unsafe.Slice((*uint32)(unsafe.Pointer(cRows)), nItems)

	off, idx := 0, 0
	for j, group := range x {
		items[j] = uint32(len(group))
		for _, m := range group {
			n, _ := m.Dims()
			rows[idx] = uint32(n)
			idx++
			for r := 0; r < n; r++ {
				copy(data[off:off+D], m.RawRowView(r))
				off += D
			}
		}
	}

	in := C.scm_input{
		data:   cData,
		items:  cItems,
		rows:   cRows,
		groups: C.uint(J),
		dims:   C.uint(D),
	}

	cResult := C.scm_learn(&in,
		C.uint(cfg.Trunc),
		C.double(cfg.Prior),
		cBool(cfg.Verbose),
		cBool(cfg.Sparse),
		C.uint(resolveThreads(cfg.Threads)),
	)
	defer C.scm_free_result(&cResult)

	if cResult.success == 0 {
		errMsg := "SCM learning failed"
		if cResult.error_msg != nil {
			errMsg = C.GoString(cResult.error_msg)
		}
		return nil, errors.New(errMsg)
	}

	T, K := int(cResult.classes), int(cResult.clusters)
	rs := &scm.ResultSet{
		QY:       make([]*mat.Dense, J),
		QZ:       make([][]*mat.Dense, J),
		Weights:  make([]scm.WeightDistribution, J),
		Classes:  make([]scm.WeightDistribution, T),
		Clusters: make([]scm.GaussianCluster, K),
	}

	qY := goFloats(cResult.qY, nItems*T)
	qZ := goFloats(cResult.qZ, nObs*K)
	weights := goFloats(cResult.weights, J*T)
	classWeights := goFloats(cResult.class_weights, T*K)
	means := goFloats(cResult.means, K*D)
	covs := goFloats(cResult.covariances, K*D*D)

	yOff, zOff := 0, 0
	for j, group := range x {
		I := len(group)
		rs.QY[j] = denseCopy(I, T, qY[yOff:yOff+I*T])
		yOff += I * T

		rs.QZ[j] = make([]*mat.Dense, I)
		for i, m := range group {
			n, _ := m.Dims()
			rs.QZ[j][i] = denseCopy(n, K, qZ[zOff:zOff+n*K])
			zOff += n * K
		}

		rs.Weights[j] = logWeights(weights[j*T : (j+1)*T])
	}

	for t := 0; t < T; t++ {
		rs.Classes[t] = logWeights(classWeights[t*K : (t+1)*K])
	}

	for k := 0; k < K; k++ {
		rs.Clusters[k] = scm.Gaussian{
			Mu:    append([]float64(nil), means[k*D:(k+1)*D]...),
			Sigma: denseCopy(D, D, covs[k*D*D:(k+1)*D*D]),
		}
	}

	return rs, nil
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// goFloats views a C array; callers must copy before the result is freed.
func goFloats(p *C.double, n int) []float64 {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(p)), n)
}

func denseCopy(rows, cols int, src []float64) *mat.Dense {
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, rows*cols)
	copy(data, src)
	return mat.NewDense(rows, cols, data)
}

func logWeights(src []float64) scm.LogWeights {
	w := make(scm.LogWeights, len(src))
	copy(w, src)
	return w
}
