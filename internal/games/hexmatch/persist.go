package hexmatch

import (
	"context"
	"fmt"

	"github.com/vovakirdan/hexmatch/internal/core"
	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/engine"
)

// SlotAdapter stores engine snapshots in a byte save slot.
type SlotAdapter struct {
	slot core.SaveSlot
}

var _ engine.PersistenceAdapter = (*SlotAdapter)(nil)

// NewSlotAdapter wraps a save slot.
func NewSlotAdapter(slot core.SaveSlot) *SlotAdapter {
	return &SlotAdapter{slot: slot}
}

// Load decodes the saved snapshot. An empty slot yields nil.
func (a *SlotAdapter) Load(ctx context.Context) (*engine.Snapshot, error) {
	data, err := a.slot.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	s, err := engine.DecodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("hexmatch: corrupt save: %w", err)
	}
	return s, nil
}

// Save encodes and stores the snapshot.
func (a *SlotAdapter) Save(ctx context.Context, s engine.Snapshot) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("hexmatch: cannot encode snapshot: %w", err)
	}
	return a.slot.Save(ctx, data)
}
