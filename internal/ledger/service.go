package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/outlay-dev/outlay/internal/model"
)

// Store holds the in-process ordered sequence of expenses and mediates
// persistence. It starts empty and keeps insertion order; nothing survives
// the process unless Save is called.
type Store struct {
	expenses []model.Expense
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Add validates the raw input fields and appends a new expense.
func (s *Store) Add(date, category, amount, description string) error {
	e, err := NewExpense(date, category, amount, description)
	if err != nil {
		return err
	}
	s.expenses = append(s.expenses, e)
	return nil
}

// Append adds an already-validated expense.
func (s *Store) Append(e model.Expense) {
	s.expenses = append(s.expenses, e)
}

// Expenses returns the recorded expenses in insertion order.
func (s *Store) Expenses() []model.Expense {
	return s.expenses
}

// Len returns the number of recorded expenses.
func (s *Store) Len() int {
	return len(s.expenses)
}

// Save serializes the full sequence to a JSON array at path, creating parent
// directories as needed and overwriting any existing file.
func (s *Store) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteExpenses(f, s.expenses); err != nil {
		return fmt.Errorf("writing ledger %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a ledger file and replaces the in-memory collection with its
// contents. On any failure the prior collection is left unchanged.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	expenses, err := ReadExpenses(f)
	if err != nil {
		return fmt.Errorf("reading ledger %s: %w", path, err)
	}

	s.expenses = expenses
	return nil
}
