package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	assert.Equal(t, "scm dev (commit abc, built now)", Info{Version: "dev", CommitHash: "abc", BuildTime: "now"}.String())
	assert.Equal(t, "scm v1.2.0 (commit abc, built now)", Info{Version: "v1.2.0", CommitHash: "abc", BuildTime: "now"}.String())
}

func TestInfo_Short(t *testing.T) {
	assert.Equal(t, "0123456", Info{CommitHash: "0123456789"}.Short())
	assert.Equal(t, "dev", Info{CommitHash: "dev"}.Short())
}

func TestBuildSettings(t *testing.T) {
	cgo, tags := buildSettings([]debug.BuildSetting{
		{Key: "CGO_ENABLED", Value: "1"},
		{Key: "-tags", Value: "libcluster, netgo"},
		{Key: "GOARCH", Value: "amd64"},
	})
	assert.True(t, cgo)
	assert.Equal(t, []string{"libcluster", "netgo"}, tags)

	cgo, tags = buildSettings([]debug.BuildSetting{{Key: "CGO_ENABLED", Value: "0"}})
	assert.False(t, cgo)
	assert.Nil(t, tags)
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)
}
