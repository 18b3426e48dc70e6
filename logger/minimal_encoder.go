package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Gruvbox Dark palette (warm, muted, easy on eyes)
const (
	colorReset  = "\x1b[0m"
	colorBold   = "\x1b[1m"
	colorTime   = "\x1b[38;5;108m"
	colorName   = "\x1b[38;5;208m"
	colorKey    = "\x1b[38;5;109m"
	colorWarn   = "\x1b[38;5;214m"
	colorWarnBg = "\x1b[48;5;58m"
	colorErr    = "\x1b[38;5;167m"
	colorErrBg  = "\x1b[48;5;88m"
	colorDebug  = "\x1b[38;5;245m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  scm.adapter  engine finished  call_id=… duration_ms=12"
//
// Fields added through With() accumulate in the embedded map encoder and are
// printed ahead of the entry's own fields.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return &minimalEncoder{MapObjectEncoder: clone}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := bufferPool.Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorName)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	if kv := formatFields(enc.Fields, fields); kv != "" {
		final.AppendString("  ")
		final.AppendString(kv)
	}

	final.AppendString("\n")
	return final, nil
}

func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return colorDebug + "DEBUG" + colorReset
	case zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarn + "WARN" + colorReset
	default:
		return colorBold + colorErrBg + colorErr + level.CapitalString() + colorReset
	}
}

// formatFields renders every field as key=value: context fields first in
// sorted order, then the entry's fields in call order. No field is dropped.
func formatFields(context map[string]interface{}, fields []zapcore.Field) string {
	if len(context) == 0 && len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+len(fields))
	for _, k := range keys {
		parts = append(parts, renderField(k, context[k]))
	}

	m := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(m)
		if v, ok := m.Fields[f.Key]; ok {
			parts = append(parts, renderField(f.Key, v))
		}
	}
	return strings.Join(parts, " ")
}

func renderField(key string, value interface{}) string {
	return colorKey + key + colorReset + "=" + fmt.Sprintf("%v", value)
}
