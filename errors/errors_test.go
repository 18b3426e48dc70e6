package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestNewInputShapef(t *testing.T) {
	err := NewInputShapef("X{%d}{%d} is not a numeric matrix", 1, 2)

	assert.Equal(t, "X{1}{2} is not a numeric matrix", err.Error())
	assert.True(t, IsInputShapeError(err))
	assert.False(t, IsConfigurationError(err))
	assert.False(t, IsEngineError(err))
}

func TestNewConfigurationf(t *testing.T) {
	err := NewConfigurationf("trunc must be >= 1, got %d", 0)

	assert.Equal(t, "trunc must be >= 1, got 0", err.Error())
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsInputShapeError(err))
}

func TestMarkEngine_KeepsMessage(t *testing.T) {
	raw := fmt.Errorf("Too many clusters for the data")
	err := MarkEngine(raw)

	assert.Equal(t, "Too many clusters for the data", err.Error())
	assert.True(t, IsEngineError(err))
	assert.True(t, Is(err, raw))
	assert.Nil(t, MarkEngine(nil))
}

func TestMarkInputShapeAndConfiguration(t *testing.T) {
	decode := New("yaml: line 3: did not find expected key")

	assert.True(t, IsInputShapeError(MarkInputShape(decode)))
	assert.True(t, IsConfigurationError(MarkConfiguration(decode)))
	assert.Equal(t, decode.Error(), MarkInputShape(decode).Error())
	assert.Nil(t, MarkInputShape(nil))
	assert.Nil(t, MarkConfiguration(nil))
}

func TestClassSurvivesWrapping(t *testing.T) {
	err := Wrap(NewConfigurationf("prior must be > 0"), "parse options")
	err = WithHint(err, "set prior to a positive number")

	assert.True(t, IsConfigurationError(err))
	assert.Equal(t, "configuration", Class(err))
	assert.Contains(t, GetAllHints(err), "set prior to a positive number")
}

func TestClass(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"input", NewInputShapef("bad"), "input"},
		{"configuration", NewConfigurationf("bad"), "configuration"},
		{"engine", MarkEngine(New("bad")), "engine"},
		{"plain", New("bad"), "unknown"},
		{"nil", nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Class(tt.err))
		})
	}
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.False(t, IsInputShapeError(nil))
	assert.False(t, IsEngineError(nil))
}

func ExampleMarkEngine() {
	err := MarkEngine(New("covariance is not positive definite"))
	fmt.Println(err, IsEngineError(err))
	// Output: covariance is not positive definite true
}
