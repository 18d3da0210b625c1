package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padview/padview/internal/inspect"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagFields = nil
		flagRecord = ""
	})
}

func examplePath(name string) string {
	return filepath.Join("..", "..", "example", name)
}

func TestLoadRecordsInlineFields(t *testing.T) {
	resetFlags(t)
	flagFields = []string{"magic:4:4", "seq:8"}

	recs, err := loadRecords(nil)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Record", recs[0].Name)
	require.Len(t, recs[0].Fields, 2)
	assert.Equal(t, 8, recs[0].Fields[1].Align)
}

func TestLoadRecordsFieldsAndFileConflict(t *testing.T) {
	resetFlags(t)
	flagFields = []string{"magic:4:4"}

	_, err := loadRecords([]string{examplePath("packet.rec")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadRecordsNoInput(t *testing.T) {
	resetFlags(t)

	_, err := loadRecords(nil)
	assert.Error(t, err)
}

func TestLoadRecordsFromFile(t *testing.T) {
	resetFlags(t)

	recs, err := loadRecords([]string{examplePath("packet.rec")})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Packet", recs[0].Name)
}

func TestLoadRecordsSelectsRecord(t *testing.T) {
	resetFlags(t)
	flagRecord = "Packet"

	recs, err := loadRecords([]string{examplePath("packet.rec")})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Packet", recs[0].Name)
}

func TestLoadRecordsRecordNotFound(t *testing.T) {
	resetFlags(t)
	flagRecord = "Missing"

	_, err := loadRecords([]string{examplePath("packet.rec")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Missing"`)
}

// A duplicate field name must surface as an InvalidFieldError through the
// command tree, so main exits non-zero.
func TestInspectRejectsDuplicateField(t *testing.T) {
	resetFlags(t)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"inspect", "--fields", "a:4:4,a:8:8"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, &inspect.InvalidFieldError{Reason: inspect.ReasonDuplicateName})
}

func TestInspectRejectsBadPolicy(t *testing.T) {
	resetFlags(t)
	flagFields = []string{"a:4:4"}
	t.Cleanup(func() { inspectPolicy = "declared" })

	inspectPolicy = "fastest"
	err := runInspect(inspectCmd, nil)
	assert.Error(t, err)
}
