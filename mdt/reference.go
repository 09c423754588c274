package mdt

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/models"
	"github.com/blueline-rp/mdt-bot/sheets"
)

// Reference holds the current penalty-reference snapshot. Each fetch
// replaces the whole index atomically; readers never see a partial
// table.
type Reference struct {
	db  sheets.PenaltyDatabase
	idx atomic.Value
}

// NewReference returns a reference with no snapshot loaded yet.
func NewReference(db sheets.PenaltyDatabase) *Reference {
	return &Reference{db: db}
}

// Refresh fetches the reference tab and swaps in the new index.
func (r *Reference) Refresh(ctx context.Context) error {
	idx, err := r.db.Load(ctx)
	if err != nil {
		return err
	}
	r.idx.Store(idx)
	zap.S().Infow("penalty reference refreshed", "records", idx.Len())
	return nil
}

// Index returns the current snapshot, or nil if no fetch has succeeded
// yet. Callers must treat nil as "nothing resolves".
func (r *Reference) Index() *models.PenaltyIndex {
	idx, _ := r.idx.Load().(*models.PenaltyIndex)
	return idx
}
