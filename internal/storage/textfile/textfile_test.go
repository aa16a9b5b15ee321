package textfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-roster/internal/storage"
	"github.com/aanand-mishra/student-roster/internal/types"
)

func newStore() *Store {
	return New(types.NewNameRule(types.DefaultMaxNameLength))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "students.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	store := newStore()
	path := filepath.Join(t.TempDir(), "klasse.txt")

	want := []types.Student{
		{Number: 1, FirstName: "Anna", LastName: "Berger"},
		{Number: 2, FirstName: "Ben", LastName: "Huber"},
		{Number: 5, FirstName: "Clara", LastName: "Wolf"},
	}

	require.NoError(t, store.Save(path, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 Anna Berger\n2 Ben Huber\n5 Clara Wolf\n", string(raw))

	got, err := store.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_TruncatesExistingContent(t *testing.T) {
	path := writeFile(t, "1 Old Entry\n2 Another Old\n3 Third Old\n")

	require.NoError(t, newStore().Save(path, []types.Student{{Number: 1, FirstName: "New", LastName: "Entry"}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 New Entry\n", string(raw))
}

func TestSave_UnopenablePathIsFileOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "students.txt")

	err := newStore().Save(path, nil)
	assert.ErrorIs(t, err, storage.ErrFileOpen)
}

func TestLoad_MissingFileIsFileOpenError(t *testing.T) {
	_, err := newStore().Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, storage.ErrFileOpen)
}

func TestLoad_DirectoryIsFileOpenError(t *testing.T) {
	_, err := newStore().Load(t.TempDir())
	assert.ErrorIs(t, err, storage.ErrFileOpen)
}

func TestLoad_EmptyFileYieldsNoRecords(t *testing.T) {
	got, err := newStore().Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_StopsAtFirstMalformedTriple(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.Student
	}{
		{
			name:    "partial trailing line",
			content: "1 Anna Berger\n2 Ben\n",
			want:    []types.Student{{Number: 1, FirstName: "Anna", LastName: "Berger"}},
		},
		{
			name:    "non numeric number",
			content: "1 Anna Berger\nzwei Ben Huber\n3 Clara Wolf\n",
			want:    []types.Student{{Number: 1, FirstName: "Anna", LastName: "Berger"}},
		},
		{
			name:    "overlong name",
			content: "1 Anna Berger\n2 Bartholomaeus-Maximilian Huber\n",
			want:    []types.Student{{Number: 1, FirstName: "Anna", LastName: "Berger"}},
		},
		{
			name:    "garbage first",
			content: "hello\n",
			want:    []types.Student{},
		},
		{
			name:    "triple split across lines",
			content: "1 Anna\nBerger 2\nBen Huber",
			want: []types.Student{
				{Number: 1, FirstName: "Anna", LastName: "Berger"},
				{Number: 2, FirstName: "Ben", LastName: "Huber"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newStore().Load(writeFile(t, tt.content))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
