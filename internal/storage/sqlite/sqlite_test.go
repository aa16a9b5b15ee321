package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-roster/internal/storage"
	"github.com/aanand-mishra/student-roster/internal/types"
)

func newStore() *SQLite {
	return New(types.NewNameRule(types.DefaultMaxNameLength))
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	store := newStore()
	path := filepath.Join(t.TempDir(), "klasse.db")

	want := []types.Student{
		{Number: 3, FirstName: "Clara", LastName: "Wolf"},
		{Number: 1, FirstName: "Anna", LastName: "Berger"},
		{Number: 2, FirstName: "Ben", LastName: "Huber"},
	}

	require.NoError(t, store.Save(path, want))

	got, err := store.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSave_ReplacesPreviousContents(t *testing.T) {
	store := newStore()
	path := filepath.Join(t.TempDir(), "klasse.db")

	require.NoError(t, store.Save(path, []types.Student{
		{Number: 1, FirstName: "Anna", LastName: "Berger"},
		{Number: 2, FirstName: "Ben", LastName: "Huber"},
	}))
	require.NoError(t, store.Save(path, []types.Student{
		{Number: 1, FirstName: "Zoe", LastName: "Lang"},
	}))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Student{{Number: 1, FirstName: "Zoe", LastName: "Lang"}}, got)
}

func TestSave_EmptyRosterLoadsEmpty(t *testing.T) {
	store := newStore()
	path := filepath.Join(t.TempDir(), "leer.db")

	require.NoError(t, store.Save(path, nil))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_MissingFileIsFileOpenError(t *testing.T) {
	_, err := newStore().Load(filepath.Join(t.TempDir(), "nope.db"))
	assert.ErrorIs(t, err, storage.ErrFileOpen)
}

func TestSave_MissingDirectoryIsFileOpenError(t *testing.T) {
	err := newStore().Save(filepath.Join(t.TempDir(), "missing", "klasse.db"), nil)
	assert.ErrorIs(t, err, storage.ErrFileOpen)
}

func TestLoad_StopsAtFirstInvalidRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klasse.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(createTable)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO students (position, number, first_name, last_name) VALUES
		(0, 1, 'Anna', 'Berger'),
		(1, 2, '', 'Huber'),
		(2, 3, 'Clara', 'Wolf')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	got, err := newStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Student{{Number: 1, FirstName: "Anna", LastName: "Berger"}}, got)
}
