package ledger

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAdd(t *testing.T) {
	st := NewStore()

	require.NoError(t, st.Add("2024-01-15", "Groceries", "42.50", "Weekly shop"))
	require.NoError(t, st.Add("2024-01-16", "Transport", "30", ""))

	require.Equal(t, 2, st.Len())
	expenses := st.Expenses()
	assert.Equal(t, "Groceries", expenses[0].Category)
	assert.Equal(t, "Transport", expenses[1].Category)
	assert.True(t, expenses[0].Amount.Equal(dec("42.50")))
}

func TestStoreAdd_Invalid(t *testing.T) {
	st := NewStore()

	assert.ErrorIs(t, st.Add("2024-13-40", "Groceries", "10", ""), ErrInvalidDate)
	assert.ErrorIs(t, st.Add("2024-01-15", "Groceries", "abc", ""), ErrInvalidAmount)
	assert.ErrorIs(t, st.Add("2024-01-15", "", "10", ""), ErrEmptyCategory)

	// Nothing was appended.
	assert.Equal(t, 0, st.Len())
}

func TestStoreSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")

	st := NewStore()
	require.NoError(t, st.Add("2024-01-15", "Groceries", "50", "Weekly shop"))
	require.NoError(t, st.Add("2024-01-16", "Transport", "30", ""))
	require.NoError(t, st.Add("2024-01-17", "Groceries", "20", "Top-up"))
	require.NoError(t, st.Save(path))

	loaded := NewStore()
	require.NoError(t, loaded.Load(path))
	require.Equal(t, st.Len(), loaded.Len())
	for i, want := range st.Expenses() {
		got := loaded.Expenses()[i]
		assert.Equal(t, want.Date, got.Date)
		assert.Equal(t, want.Category, got.Category)
		assert.True(t, want.Amount.Equal(got.Amount))
		assert.Equal(t, want.Description, got.Description)
	}
}

func TestStoreSave_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "expenses.json")

	st := NewStore()
	require.NoError(t, st.Add("2024-01-15", "Groceries", "10", ""))
	require.NoError(t, st.Save(path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestStoreLoad_NotFound(t *testing.T) {
	st := NewStore()
	require.NoError(t, st.Add("2024-01-15", "Groceries", "10", ""))

	err := st.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// Prior collection is unchanged.
	require.Equal(t, 1, st.Len())
	assert.Equal(t, "Groceries", st.Expenses()[0].Category)
}

func TestStoreLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o644))

	st := NewStore()
	require.NoError(t, st.Add("2024-01-15", "Groceries", "10", ""))

	err := st.Load(path)
	assert.ErrorIs(t, err, ErrMalformedLedger)

	// Prior collection is unchanged.
	require.Equal(t, 1, st.Len())
}

func TestStoreLoad_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")

	saved := NewStore()
	require.NoError(t, saved.Add("2024-01-15", "Rent", "900", ""))
	require.NoError(t, saved.Save(path))

	st := NewStore()
	require.NoError(t, st.Add("2024-02-01", "Groceries", "10", ""))
	require.NoError(t, st.Load(path))

	// Load replaces, not merges.
	require.Equal(t, 1, st.Len())
	assert.Equal(t, "Rent", st.Expenses()[0].Category)
}

func TestStoreSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")

	st := NewStore()
	require.NoError(t, st.Add("2024-01-15", "Groceries", "10", ""))
	require.NoError(t, st.Save(path))
	require.NoError(t, st.Add("2024-01-16", "Transport", "5", ""))
	require.NoError(t, st.Save(path))

	loaded := NewStore()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, 2, loaded.Len())
}
