package session

// Animation speed bounds, in steps per second.
const (
	MinSpeed     = 2
	MaxSpeed     = 60
	DefaultSpeed = 25

	// Below speedKnee speed changes by fineStep, above it by coarseStep.
	speedKnee  = 10
	fineStep   = 2
	coarseStep = 5
)

// ClampSpeed forces s into [MinSpeed, MaxSpeed].
func ClampSpeed(s int) int {
	switch {
	case s < MinSpeed:
		return MinSpeed
	case s > MaxSpeed:
		return MaxSpeed
	default:
		return s
	}
}

// SpeedUp returns the next faster speed.
func SpeedUp(s int) int {
	switch {
	case s < speedKnee:
		s += fineStep
	case s < MaxSpeed:
		s += coarseStep
	}
	return ClampSpeed(s)
}

// SpeedDown returns the next slower speed.
func SpeedDown(s int) int {
	switch {
	case s > speedKnee:
		s -= coarseStep
	case s > MinSpeed:
		s -= fineStep
	}
	return ClampSpeed(s)
}
