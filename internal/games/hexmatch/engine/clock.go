package engine

import "time"

// Tick advances the session clock by dt. Every whole second of accumulated
// time decays the combo timer and the power-up timers and, in timed mode, the
// match clock unless Freeze is active. The rotation schedule advances by dt.
// A finished session ignores ticks.
func (b *Board) Tick(dt time.Duration) []Event {
	if b.gameOver || dt <= 0 {
		return nil
	}
	b.elapsed += dt

	var events []Event
	b.secondAcc += dt
	for b.secondAcc >= time.Second && !b.gameOver {
		b.secondAcc -= time.Second
		events = append(events, b.tickSecond()...)
	}
	if b.gameOver {
		return events
	}
	return append(events, b.advanceRotation(dt)...)
}

// tickSecond runs the once-per-second countdowns.
func (b *Board) tickSecond() []Event {
	var events []Event
	frozen := b.powerUps.Frozen()

	combo, expired := b.combo.tickSecond()
	b.combo = combo
	if expired {
		events = append(events, ComboExpiredEvent{})
	}

	powerUps, ended := b.powerUps.tickSecond()
	b.powerUps = powerUps
	for _, t := range ended {
		events = append(events, PowerUpExpiredEvent{Type: t})
	}

	if b.undo != nil {
		b.undo.combo, _ = b.undo.combo.tickSecond()
		b.undo.powerUps, _ = b.undo.powerUps.tickSecond()
	}

	if b.rules.TimedMode && !frozen && b.timeLeft > 0 {
		b.timeLeft--
		if b.timeLeft == 0 {
			events = append(events, b.End()...)
		}
	}
	return events
}

// advanceRotation raises the warning ahead of a flip and flips the board
// every RotationInterval.
func (b *Board) advanceRotation(dt time.Duration) []Event {
	interval := b.rules.RotationInterval
	if !b.rules.RotationEnabled || interval <= 0 {
		return nil
	}
	var events []Event
	b.rotationAcc += dt
	for b.rotationAcc >= interval {
		rest := b.rotationAcc - interval
		events = append(events, b.RotateBoard())
		b.rotationAcc = rest
	}
	lead := b.rules.RotationWarning
	if !b.warning && lead > 0 && b.rotationAcc >= interval-lead {
		b.warning = true
		events = append(events, RotationWarningEvent{})
	}
	return events
}
