package wave

// Oscillator moves at constant speed and bounces off 0 and 1.
type Oscillator struct {
	Position float64
	Speed    float64
}

// Advance moves a point by dt*speed and reflects it once if it left [0, 1].
// The overshoot is corrected by re-stepping from the wall with the negated
// speed rather than by clamping.
func Advance(dt, position, speed float64) (float64, float64) {
	position += dt * speed
	if position > 1.0 {
		speed = -speed
		position = 1.0 + dt*speed
	} else if position < 0.0 {
		speed = -speed
		position = dt * speed
	}
	return position, speed
}

// Step advances the oscillator in place.
func (o *Oscillator) Step(dt float64) {
	o.Position, o.Speed = Advance(dt, o.Position, o.Speed)
}
