package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/hexmatch/internal/games/hexmatch/hex"
)

// Snapshot is the serializable state of a session. Hosts persist it after
// every settled transition and resume from it.
type Snapshot struct {
	PlacedTiles   []Tile       `json:"placedTiles"`
	NextTiles     []Tile       `json:"nextTiles"`
	Score         int          `json:"score"`
	TimeLeft      int          `json:"timeLeft"` // seconds, or Untimed
	BoardRotation int          `json:"boardRotation"`
	PowerUps      PowerUpState `json:"powerUps"`
	Combo         ComboState   `json:"combo"`
	StartTime     int64        `json:"startTime"` // epoch millis
	TimedMode     bool         `json:"timedMode"`
	Rewards       Rewards      `json:"rewards"`
	ElapsedMs     int64        `json:"elapsedMs"`
	GameOver      bool         `json:"gameOver"`
}

// Snapshot returns an independent copy of the session state.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		PlacedTiles:   slices.Clone(b.placed),
		NextTiles:     slices.Clone(b.next),
		Score:         b.score,
		TimeLeft:      b.timeLeft,
		BoardRotation: b.rotation,
		PowerUps:      b.powerUps,
		Combo:         b.combo,
		StartTime:     b.startTime,
		TimedMode:     b.rules.TimedMode,
		Rewards:       b.rewards,
		ElapsedMs:     b.elapsed.Milliseconds(),
		GameOver:      b.gameOver,
	}
}

// Encode serializes a snapshot to JSON.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("engine: cannot encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot field by field. A field that is missing
// or malformed keeps its zero value, and a malformed tile is dropped; Restore
// then substitutes defaults. Only a blob that is not a JSON object fails.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("engine: cannot decode snapshot: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("engine: cannot decode snapshot: not an object")
	}

	s := &Snapshot{TimeLeft: Untimed}
	s.PlacedTiles = decodeTiles(raw["placedTiles"])
	s.NextTiles = decodeTiles(raw["nextTiles"])
	decodeField(raw, "score", &s.Score)
	decodeField(raw, "boardRotation", &s.BoardRotation)
	decodeField(raw, "powerUps", &s.PowerUps)
	decodeField(raw, "combo", &s.Combo)
	decodeField(raw, "startTime", &s.StartTime)
	decodeField(raw, "timedMode", &s.TimedMode)
	decodeField(raw, "rewards", &s.Rewards)
	decodeField(raw, "elapsedMs", &s.ElapsedMs)
	decodeField(raw, "gameOver", &s.GameOver)
	// An infinite clock is stored as null.
	if !decodeField(raw, "timeLeft", &s.TimeLeft) {
		s.TimeLeft = Untimed
	}
	return s, nil
}

// decodeField decodes raw[key] into dst, leaving dst untouched on failure.
func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) bool {
	msg, ok := raw[key]
	if !ok || string(msg) == "null" {
		return false
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return false
	}
	*dst = v
	return true
}

func decodeTiles(msg json.RawMessage) []Tile {
	var items []json.RawMessage
	if len(msg) == 0 || json.Unmarshal(msg, &items) != nil {
		return nil
	}
	tiles := make([]Tile, 0, len(items))
	for _, item := range items {
		var t Tile
		if err := json.Unmarshal(item, &t); err != nil {
			continue
		}
		tiles = append(tiles, t)
	}
	return tiles
}

// Restore rebuilds a board from a snapshot, repairing each field that breaks
// an invariant instead of rejecting the whole snapshot:
//   - out-of-bounds, duplicate and inconsistently colored tiles are dropped,
//     and an empty board gets a seed tile
//   - the queue is trimmed or refilled to QueueSize
//   - rotation snaps to the nearer of 0 and 180
//   - an inconsistent combo resets, and a live combo's multiplier is
//     recomputed from its count
//   - negative timers, score and rewards clamp to zero
//
// The snapshot's timed flag overrides opts.Rules.TimedMode.
func Restore(s Snapshot, opts Options) *Board {
	b := newBoard(opts)
	b.rules.TimedMode = s.TimedMode

	if s.StartTime > 0 {
		b.startTime = s.StartTime
	}
	b.elapsed = time.Duration(max(s.ElapsedMs, 0)) * time.Millisecond

	b.placed = b.restorePlaced(s.PlacedTiles)
	b.next = b.restoreQueue(s.NextTiles)
	b.score = max(s.Score, 0)
	b.rotation = snapRotation(s.BoardRotation)
	b.powerUps = b.restorePowerUps(s.PowerUps)
	b.combo = b.restoreCombo(s.Combo)
	b.rewards = Rewards{
		Experience:    max(s.Rewards.Experience, 0),
		UpgradePoints: max(s.Rewards.UpgradePoints, 0),
		GridClears:    max(s.Rewards.GridClears, 0),
	}

	b.timeLeft = Untimed
	if b.rules.TimedMode {
		b.timeLeft = s.TimeLeft
		if b.timeLeft < 0 {
			b.timeLeft = b.rules.TimeLimitSecs
		}
	}
	b.gameOver = s.GameOver || (b.rules.TimedMode && b.timeLeft == 0)
	if b.gameOver {
		b.selected = -1
	}

	b.CheckGridFull()
	return b
}

func (b *Board) restorePlaced(tiles []Tile) []Tile {
	placed := make([]Tile, 0, len(tiles))
	seen := make(map[hex.Coord]bool, len(tiles))
	for _, t := range tiles {
		if !hex.InBounds(t.Coord, b.rules.Radius) || seen[t.Coord] || validateKind(t) != nil {
			continue
		}
		seen[t.Coord] = true
		t.Placed = true
		placed = append(placed, t)
	}
	if len(placed) == 0 {
		placed = append(placed, b.factory.SeedTile())
	}
	return RecomputeValues(placed)
}

func (b *Board) restoreQueue(tiles []Tile) []Tile {
	next := make([]Tile, 0, QueueSize)
	for _, t := range tiles {
		if len(next) == QueueSize {
			break
		}
		if validateKind(t) != nil {
			continue
		}
		t.Placed = false
		t.Coord = hex.Coord{}
		t.Value = 0
		next = append(next, t)
	}
	for len(next) < QueueSize {
		next = append(next, b.factory.RandomTile(hex.Coord{}, b.upgrades))
	}
	return next
}

func (b *Board) restorePowerUps(p PowerUpState) PowerUpState {
	p.FreezeRemaining = max(p.FreezeRemaining, 0)
	p.MultiplierRemaining = max(p.MultiplierRemaining, 0)
	if p.MultiplierRemaining > 0 && p.MultiplierValue <= 0 {
		p.MultiplierValue = b.rules.MultiplierValue
	}
	if p.MultiplierRemaining == 0 {
		p.MultiplierValue = 0
	}
	return p
}

func (b *Board) restoreCombo(c ComboState) ComboState {
	if c.Count <= 0 || c.Timer <= 0 {
		return NoCombo()
	}
	c.Multiplier = b.rules.ComboFamily.At(c.Count, b.upgrades.level())
	c.LastPlacement = max(c.LastPlacement, 0)
	return c
}

// snapRotation maps any angle to the nearer of 0 and 180.
func snapRotation(deg int) int {
	deg = ((deg % 360) + 360) % 360
	if deg >= 90 && deg < 270 {
		return 180
	}
	return 0
}

// PersistenceAdapter stores the snapshot of one session. Load returns a nil
// snapshot when there is no saved game.
type PersistenceAdapter interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s Snapshot) error
}

// Resume loads a saved game through the adapter, or starts a fresh board
// when there is none, the load fails, or the saved game already ended.
// restored reports whether the saved game was used.
func Resume(ctx context.Context, p PersistenceAdapter, opts Options) (b *Board, restored bool) {
	if p == nil {
		return New(opts), false
	}
	s, err := p.Load(ctx)
	if err != nil || s == nil || s.GameOver {
		return New(opts), false
	}
	return Restore(*s, opts), true
}

// MemoryAdapter is an in-memory PersistenceAdapter. It stores encoded JSON
// so loaded snapshots never alias saved ones.
type MemoryAdapter struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

// Load returns the saved snapshot, or nil if nothing was saved.
func (m *MemoryAdapter) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return DecodeSnapshot(m.data)
}

// Save replaces the saved snapshot.
func (m *MemoryAdapter) Save(ctx context.Context, s Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := s.Encode()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	return nil
}

// Clear forgets the saved snapshot.
func (m *MemoryAdapter) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
}
