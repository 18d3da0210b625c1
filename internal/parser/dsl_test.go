package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padview/padview/internal/inspect"
)

const sampleRecords = `
// wire header for the v2 protocol
record Packet {
    magic:   u32
    flag:    bool
    payload: bytes(13)
    seq:     u64
    crc:     u16 align 4
}

record Tag {
    only: u8
}
`

func TestParseString(t *testing.T) {
	recs, err := ParseString(sampleRecords)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	packet := recs[0]
	assert.Equal(t, "Packet", packet.Name)
	require.Len(t, packet.Fields, 5)

	want := []inspect.FieldSpec{
		{Name: "magic", Size: 4, Align: 4, DeclaredIndex: 0},
		{Name: "flag", Size: 1, Align: 1, DeclaredIndex: 1},
		{Name: "payload", Size: 13, Align: 1, DeclaredIndex: 2},
		{Name: "seq", Size: 8, Align: 8, DeclaredIndex: 3},
		{Name: "crc", Size: 2, Align: 4, DeclaredIndex: 4},
	}
	assert.Equal(t, want, packet.Fields)

	assert.Equal(t, "Tag", recs[1].Name)
	require.Len(t, recs[1].Fields, 1)
	assert.Equal(t, inspect.FieldSpec{Name: "only", Size: 1, Align: 1}, recs[1].Fields[0])
}

func TestParsePrimitives(t *testing.T) {
	tests := []struct {
		typ   string
		size  int
		align int
	}{
		{"u8", 1, 1},
		{"i8", 1, 1},
		{"bool", 1, 1},
		{"u16", 2, 2},
		{"i16", 2, 2},
		{"u32", 4, 4},
		{"i32", 4, 4},
		{"f32", 4, 4},
		{"u64", 8, 8},
		{"i64", 8, 8},
		{"f64", 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			recs, err := ParseString("record R { x: " + tt.typ + " }")
			require.NoError(t, err)
			require.Len(t, recs, 1)
			require.Len(t, recs[0].Fields, 1)
			assert.Equal(t, tt.size, recs[0].Fields[0].Size)
			assert.Equal(t, tt.align, recs[0].Fields[0].Align)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown_type", "record R { x: u128 }"},
		{"missing_colon", "record R { x u32 }"},
		{"unterminated_record", "record R { x: u32"},
		{"zero_length_bytes", "record R { x: bytes(0) }"},
		{"no_records", "// just a comment\n"},
		{"empty_input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.src)
			assert.Error(t, err)
		})
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	_, err := ParseString("record R {\n    x: u32\n    y: quadword\n}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"y"`)
	assert.Contains(t, err.Error(), "3:")
}

func TestParseFile(t *testing.T) {
	recs, err := ParseFile(filepath.Join("testdata", "packet.rec"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Packet", recs[0].Name)
	assert.Len(t, recs[0].Fields, 4)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join("testdata", "nope.rec"))
	assert.Error(t, err)
}
