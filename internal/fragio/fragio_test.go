package fragio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "frag.dat")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestRead_lines(t *testing.T) {
	path := writeTemp(t, "ACCGT\nCGTAC\n\nTACGG\n")

	records, err := Read(path)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "fragment-1", records[0].Name)
	assert.Equal(t, "ACCGT", records[0].Seq)
	assert.Equal(t, "TACGG", records[2].Seq)
}

func TestRead_fasta(t *testing.T) {
	path := writeTemp(t, ">read_1\nACCGT\n>read_2\nCGT\nAC\n")

	records, err := Read(path)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "read_1", records[0].Name)
	assert.Equal(t, "ACCGT", records[0].Seq)
	assert.Equal(t, "read_2", records[1].Name)
	assert.Equal(t, "CGTAC", records[1].Seq, "sequence lines are joined")
}

func TestRead_errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty file", ""},
		{"blank lines only", "\n\n\n"},
		{"fasta record without sequence", ">read_1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(writeTemp(t, tt.contents))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "nope.dat"))
		assert.Error(t, err)
	})
}
