package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/hexmatch/internal/core"
)

// Slot is one named saved-game row. It implements core.SaveSlot.
//
// Every slot carries a session ID. Loading a saved game adopts the stored ID
// so a resumed session keeps its identity; deleting the save starts a new one.
type Slot struct {
	store *Store
	name  string

	mu        sync.Mutex
	sessionID string
}

var _ core.SaveSlot = (*Slot)(nil)

// SavedGame describes a stored slot without its payload.
type SavedGame struct {
	Slot      string
	SessionID string
	UpdatedAt time.Time
}

// Slot returns the save slot with the given name.
func (s *Store) Slot(name string) *Slot {
	return &Slot{store: s, name: name, sessionID: uuid.NewString()}
}

// Name returns the slot name.
func (sl *Slot) Name() string {
	return sl.name
}

// SessionID returns the ID of the session currently bound to the slot.
func (sl *Slot) SessionID() string {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.sessionID
}

// Load returns the saved payload, or nil if the slot is empty.
func (sl *Slot) Load(ctx context.Context) ([]byte, error) {
	var sessionID, snapshot string
	err := sl.store.db.QueryRowContext(ctx,
		"SELECT session_id, snapshot FROM saved_games WHERE slot = ?",
		sl.name,
	).Scan(&sessionID, &snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game %q: %w", sl.name, err)
	}

	if sessionID != "" {
		sl.mu.Lock()
		sl.sessionID = sessionID
		sl.mu.Unlock()
	}
	return []byte(snapshot), nil
}

// Save replaces the slot payload.
func (sl *Slot) Save(ctx context.Context, data []byte) error {
	_, err := sl.store.db.ExecContext(ctx,
		`INSERT INTO saved_games (slot, session_id, snapshot, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   session_id = excluded.session_id,
		   snapshot = excluded.snapshot,
		   updated_at = excluded.updated_at`,
		sl.name, sl.SessionID(), string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %q: %w", sl.name, err)
	}
	return nil
}

// Delete removes the saved payload and binds the slot to a new session.
func (sl *Slot) Delete(ctx context.Context) error {
	_, err := sl.store.db.ExecContext(ctx, "DELETE FROM saved_games WHERE slot = ?", sl.name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete game %q: %w", sl.name, err)
	}
	sl.mu.Lock()
	sl.sessionID = uuid.NewString()
	sl.mu.Unlock()
	return nil
}

// SavedGames lists the stored slots, most recently updated first.
func (s *Store) SavedGames(ctx context.Context) ([]SavedGame, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT slot, session_id, updated_at FROM saved_games ORDER BY updated_at DESC, slot ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saved games: %w", err)
	}
	defer rows.Close()

	var games []SavedGame
	for rows.Next() {
		var g SavedGame
		var updatedAt any
		if err := rows.Scan(&g.Slot, &g.SessionID, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.UpdatedAt = parseTime(updatedAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}
