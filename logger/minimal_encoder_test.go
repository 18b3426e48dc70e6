package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(str string) string {
	return ansiRegex.ReplaceAllString(str, "")
}

func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	encoder := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "scm.adapter",
		Message:    "engine finished",
	}

	fields := []zapcore.Field{
		zap.String(FieldCallID, "abc"),
		zap.Int(FieldGroups, 3),
		zap.Uint(FieldTrunc, 20),
		zap.Float64(FieldPrior, 0.5),
		zap.Bool(FieldSparse, true),
		zap.Strings(FieldIgnored, []string{"foo"}),
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := stripANSI(buf.String())

	assert.True(t, strings.HasPrefix(out, "13:04:35  scm.adapter  engine finished"))
	for _, want := range []string{"call_id=abc", "groups=3", "trunc=20", "prior=0.5", "sparse=true", "ignored_keys=[foo]"} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestMinimalEncoderLevels(t *testing.T) {
	encoder := newMinimalEncoder()
	now := time.Now()

	info, err := encoder.EncodeEntry(zapcore.Entry{Level: zapcore.InfoLevel, Time: now, Message: "m"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, stripANSI(info.String()), "INFO")

	warn, err := encoder.EncodeEntry(zapcore.Entry{Level: zapcore.WarnLevel, Time: now, Message: "m"}, nil)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(warn.String()), "WARN")

	errEntry, err := encoder.EncodeEntry(zapcore.Entry{Level: zapcore.ErrorLevel, Time: now, Message: "m"}, nil)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(errEntry.String()), "ERROR")
}

func TestMinimalEncoderKeepsContextFields(t *testing.T) {
	base := newMinimalEncoder()
	child := base.Clone().(*minimalEncoder)
	child.AddString(FieldCallID, "ctx-1")

	buf, err := child.EncodeEntry(zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "m"},
		[]zapcore.Field{zap.Int(FieldItems, 2)})
	require.NoError(t, err)

	out := stripANSI(buf.String())
	assert.Contains(t, out, "call_id=ctx-1 items=2")

	// The parent is unaffected by the child's context.
	parent, err := base.EncodeEntry(zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "m"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, stripANSI(parent.String()), "call_id")
}
