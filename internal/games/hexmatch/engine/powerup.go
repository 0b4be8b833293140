package engine

// PowerUpState holds the countdowns of the timed power-ups. An effect is
// active while its remaining time is above zero.
type PowerUpState struct {
	FreezeRemaining     int     `json:"freeze"`     // seconds
	MultiplierRemaining int     `json:"multiplier"` // seconds
	MultiplierValue     float64 `json:"multiplierValue"`
}

// Frozen reports whether the match clock is paused.
func (s PowerUpState) Frozen() bool {
	return s.FreezeRemaining > 0
}

// ScoreMultiplier returns the active score multiplier, or 1.
func (s PowerUpState) ScoreMultiplier() float64 {
	if s.MultiplierRemaining > 0 && s.MultiplierValue > 0 {
		return s.MultiplierValue
	}
	return 1
}

// activate starts the timer of a timed power-up. Re-activating an effect
// restarts its countdown. Instant effects leave the state unchanged.
func (s PowerUpState) activate(p PowerUp) PowerUpState {
	switch p.Type {
	case PowerUpFreeze:
		s.FreezeRemaining = max(p.Duration, 0)
	case PowerUpMultiplier:
		s.MultiplierRemaining = max(p.Duration, 0)
		s.MultiplierValue = p.MultiplierValue
	}
	return s
}

// tickSecond decrements every running timer and reports which ones ran out.
func (s PowerUpState) tickSecond() (PowerUpState, []PowerUpType) {
	var expired []PowerUpType
	if s.FreezeRemaining > 0 {
		s.FreezeRemaining--
		if s.FreezeRemaining == 0 {
			expired = append(expired, PowerUpFreeze)
		}
	}
	if s.MultiplierRemaining > 0 {
		s.MultiplierRemaining--
		if s.MultiplierRemaining == 0 {
			s.MultiplierValue = 0
			expired = append(expired, PowerUpMultiplier)
		}
	}
	return s, expired
}
