package core

import "context"

// SaveSlot stores one serialized game session. Load returns nil data when
// the slot is empty.
type SaveSlot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}
