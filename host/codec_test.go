package host

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"x.json":    FormatJSON,
		"x.YAML":    FormatYAML,
		"dir/x.yml": FormatYAML,
		"opts.toml": FormatTOML,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("x.mat")
	assert.Error(t, err)
}

func TestDecode_AllFormatsAgree(t *testing.T) {
	docs := map[string]string{
		FormatJSON: `{"trunc": 2, "prior": 0.5, "verbose": true}`,
		FormatYAML: "trunc: 2\nprior: 0.5\nverbose: true\n",
		FormatTOML: "trunc = 2\nprior = 0.5\nverbose = true\n",
	}

	for format, text := range docs {
		t.Run(format, func(t *testing.T) {
			doc, err := Decode([]byte(text), format)
			require.NoError(t, err)

			v, err := FromDocument(doc)
			require.NoError(t, err)
			s := v.(Struct)

			trunc, _ := s.Field("trunc")
			assert.Equal(t, 2.0, trunc.(Matrix).At(0, 0))
			prior, _ := s.Field("prior")
			assert.Equal(t, 0.5, prior.(Matrix).At(0, 0))
			verbose, _ := s.Field("verbose")
			assert.Equal(t, KindLogical, verbose.Kind())
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("{"), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("a = "), FormatTOML)
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), "xml")
	assert.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- - [[1, 2], [3, 4]]\n"), 0o644))

	doc, err := DecodeFile(path)
	require.NoError(t, err)

	v, err := FromDocument(doc)
	require.NoError(t, err)
	outer := v.(Cell)
	require.Equal(t, 1, outer.Len())
	group := outer.Index(0).(Cell)
	require.Equal(t, 1, group.Len())
	r, c := group.Index(0).(Matrix).Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)

	_, err = DecodeFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	doc := map[string]interface{}{
		"qY": []interface{}{[][]float64{{0.5, 0.5}}},
	}

	for _, format := range []string{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, format))

			back, err := Decode(buf.Bytes(), format)
			require.NoError(t, err)
			v, err := FromDocument(back)
			require.NoError(t, err)

			qY, ok := v.(Struct).Field("qY")
			require.True(t, ok)
			m := qY.(Cell).Index(0).(Matrix)
			r, c := m.Dims()
			assert.Equal(t, 1, r)
			assert.Equal(t, 2, c)
			assert.Equal(t, 0.5, m.At(0, 1))
		})
	}
}

func TestEncode_TOMLNeedsTable(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []interface{}{1}, FormatTOML)
	assert.Error(t, err)
}
