package engine

// Event is something the board reports to the host after a transition.
// The set of events is closed; hosts switch on the concrete type.
type Event interface {
	event()
}

// TilePlacedEvent is emitted when a tile is committed to the board.
type TilePlacedEvent struct {
	Tile Tile
}

// MatchEvent is emitted when a placement produces at least one match.
type MatchEvent struct {
	Tile       Tile
	MatchCount int
	Points     int
	Breakdown  Breakdown
}

// ComboChangedEvent carries the combo state after a matching placement.
type ComboChangedEvent struct {
	Combo ComboState
}

// ComboExpiredEvent is emitted when the combo timer runs out.
type ComboExpiredEvent struct{}

// PowerUpActivatedEvent is emitted when a placed tile's power-up fires.
type PowerUpActivatedEvent struct {
	PowerUp PowerUp
}

// PowerUpExpiredEvent is emitted when a timed power-up runs out.
type PowerUpExpiredEvent struct {
	Type PowerUpType
}

// GridClearedEvent is emitted once per full board.
type GridClearedEvent struct {
	Points int
}

// GameOverEvent is emitted once when a timed session runs out of time.
type GameOverEvent struct {
	Score int
}

// RotationWarningEvent is emitted shortly before the board flips.
type RotationWarningEvent struct{}

// BoardRotatedEvent is emitted after the board snaps to a new rotation.
type BoardRotatedEvent struct {
	Degrees int
}

func (TilePlacedEvent) event()       {}
func (MatchEvent) event()            {}
func (ComboChangedEvent) event()     {}
func (ComboExpiredEvent) event()     {}
func (PowerUpActivatedEvent) event() {}
func (PowerUpExpiredEvent) event()   {}
func (GridClearedEvent) event()      {}
func (GameOverEvent) event()         {}
func (RotationWarningEvent) event()  {}
func (BoardRotatedEvent) event()     {}
