package fixture_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asap/fixture"
	"github.com/katalvlaran/asap/sparse"
)

func TestBuiltins_AllBuild(t *testing.T) {
	names := fixture.Names()
	require.Contains(t, names, fixture.DefaultName)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			f, err := fixture.Builtin(name)
			require.NoError(t, err)
			m, err := f.Matrix()
			require.NoError(t, err)
			r, c := m.Dims()
			assert.Equal(t, f.Rows, r)
			assert.Equal(t, f.Cols, c)
		})
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := fixture.Builtin("nope")
	assert.ErrorIs(t, err, fixture.ErrUnknownFixture)
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	f, err := fixture.Builtin("scipy-square")
	require.NoError(t, err)
	f.Data[0] = 100

	g, err := fixture.Builtin("scipy-square")
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Data[0])
}

func TestBuiltin_SymmetricTranspose(t *testing.T) {
	f, err := fixture.Builtin("symmetric")
	require.NoError(t, err)
	m, err := f.Matrix()
	require.NoError(t, err)
	assert.True(t, sparse.Equal(m, m.Transpose()))
}

func TestFixture_MatrixErrors(t *testing.T) {
	both := fixture.Fixture{
		Name: "both", Rows: 1, Cols: 1,
		Data: []float64{1}, Indices: []int{0}, Indptr: []int{0, 1},
		Entries: []fixture.Entry{{Row: 0, Col: 0, Value: 1}},
	}
	_, err := both.Matrix()
	assert.ErrorIs(t, err, fixture.ErrNoMatrixData)

	none := fixture.Fixture{Name: "none", Rows: 2, Cols: 2}
	_, err = none.Matrix()
	assert.ErrorIs(t, err, fixture.ErrNoMatrixData)

	bad := fixture.Fixture{Name: "bad", Rows: 1, Cols: 1, Entries: []fixture.Entry{{Row: 1, Col: 0, Value: 1}}}
	_, err = bad.Matrix()
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)

	badCSR := fixture.Fixture{Name: "badcsr", Rows: 1, Cols: 1, Data: []float64{1}, Indices: []int{0}, Indptr: []int{0}}
	_, err = badCSR.Matrix()
	assert.ErrorIs(t, err, sparse.ErrPointerArray)
}

func TestFixture_EmptyShape(t *testing.T) {
	f := fixture.Fixture{Name: "empty", Rows: 0, Cols: 3}
	m, err := f.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 3, m.Cols())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	orig, err := fixture.Builtin("wikipedia")
	require.NoError(t, err)
	want, err := orig.Matrix()
	require.NoError(t, err)

	for _, format := range []fixture.Format{fixture.YAML, fixture.TOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, fixture.Encode(&buf, format, fixture.FromMatrix("wikipedia", want)))

			got, err := fixture.Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, "wikipedia", got.Name)
			m, err := got.Matrix()
			require.NoError(t, err)
			assert.True(t, sparse.Equal(want, m), "round trip through %s must keep the arrays", format)
		})
	}
}

func TestDecode_Entries(t *testing.T) {
	yamlDoc := `
name: tiny
rows: 2
cols: 2
entries:
  - {row: 0, col: 1, value: 4.5}
  - {row: 1, col: 0, value: 2}
`
	tomlDoc := `
name = "tiny"
rows = 2
cols = 2

[[entries]]
row = 0
col = 1
value = 4.5

[[entries]]
row = 1
col = 0
value = 2.0
`
	for format, doc := range map[fixture.Format]string{fixture.YAML: yamlDoc, fixture.TOML: tomlDoc} {
		t.Run(string(format), func(t *testing.T) {
			f, err := fixture.Decode(strings.NewReader(doc), format)
			require.NoError(t, err)
			m, err := f.Matrix()
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2}, m.RowPtr())
			assert.Equal(t, []int{1, 0}, m.ColInd())
			assert.Equal(t, []float64{4.5, 2}, m.Val())
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := fixture.Decode(strings.NewReader("name: x\nrowz: 2\n"), fixture.YAML)
	assert.Error(t, err)

	_, err = fixture.Decode(strings.NewReader("name = \"x\"\nrowz = 2\n"), fixture.TOML)
	assert.Error(t, err)

	_, err = fixture.Decode(strings.NewReader(""), fixture.Format("json"))
	assert.ErrorIs(t, err, fixture.ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "band.yml")
	doc := "rows: 2\ncols: 2\ndata: [1, 2]\nindices: [0, 1]\nindptr: [0, 1, 2]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	f, err := fixture.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "band", f.Name, "name defaults to the file base name")
	m, err := f.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 2, m.NNZ())

	_, err = fixture.Load(filepath.Join(dir, "band.json"))
	assert.ErrorIs(t, err, fixture.ErrUnknownFormat)

	_, err = fixture.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
