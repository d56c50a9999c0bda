package commands

import (
	"errors"
	"io/fs"

	"github.com/outlay-dev/outlay/internal/ledger"
)

// loadStore reads the ledger at path into a fresh Store. When allowMissing
// is set, a nonexistent file yields an empty store instead of an error.
func loadStore(path string, allowMissing bool) (*ledger.Store, error) {
	st := ledger.NewStore()
	err := st.Load(path)
	if err == nil {
		logger.Debug().Str("path", path).Int("expenses", st.Len()).Msg("ledger loaded")
		return st, nil
	}
	if allowMissing && errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("path", path).Msg("ledger not found, starting empty")
		return st, nil
	}
	return nil, err
}
