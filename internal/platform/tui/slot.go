package tui

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexmatch/internal/core"
	"github.com/vovakirdan/hexmatch/internal/storage"
)

// sessionSlot is a save slot that knows which session it belongs to.
type sessionSlot interface {
	core.SaveSlot
	SessionID() string
}

// loggedSlot reports slot failures to the logger. Games treat saves as
// best-effort, so this is the only place failures surface.
type loggedSlot struct {
	inner  sessionSlot
	name   string
	logger *log.Logger
}

var _ core.SaveSlot = (*loggedSlot)(nil)

// SlotName returns the slot used for a player's session in a mode.
func SlotName(player, gameID string) string {
	return player + "/" + gameID
}

// newLoggedSlot wraps the store slot for player and game. It returns nil
// when there is no store.
func newLoggedSlot(store *storage.Store, player, gameID string, logger *log.Logger) *loggedSlot {
	if store == nil {
		return nil
	}
	name := SlotName(player, gameID)
	return &loggedSlot{inner: store.Slot(name), name: name, logger: logger}
}

func (s *loggedSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.inner.Load(ctx)
	if err != nil {
		s.logger.Warn("could not load saved game", "slot", s.name, "error", err)
		return nil, err
	}
	if data != nil {
		s.logger.Info("resuming saved game", "slot", s.name, "session", s.inner.SessionID())
	}
	return data, nil
}

func (s *loggedSlot) Save(ctx context.Context, data []byte) error {
	err := s.inner.Save(ctx, data)
	if err != nil {
		s.logger.Warn("could not save game", "slot", s.name, "error", err)
	}
	return err
}

func (s *loggedSlot) Delete(ctx context.Context) error {
	err := s.inner.Delete(ctx)
	if err != nil {
		s.logger.Warn("could not delete saved game", "slot", s.name, "error", err)
	}
	return err
}

// SessionID returns the session bound to the slot.
func (s *loggedSlot) SessionID() string {
	return s.inner.SessionID()
}
