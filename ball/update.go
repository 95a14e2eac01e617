package ball

import "math"

const (
	colorRollSides = 11
	colorRollEvery = 3
)

// ClampToBounds pulls the ball back inside the viewport, leaving a margin of
// Radius on every side. It runs before input so a window that shrank since
// the last frame cannot leave the ball stranded outside.
func ClampToBounds(s State, vp Viewport) State {
	if s.Position.X < s.Radius {
		s.Position.X = s.Radius
	}
	if s.Position.Y < s.Radius {
		s.Position.Y = s.Radius
	}
	if maxX := float32(vp.Width) - s.Radius; s.Position.X > maxX {
		s.Position.X = maxX
	}
	if maxY := float32(vp.Height) - s.Radius; s.Position.Y > maxY {
		s.Position.Y = maxY
	}
	return s
}

// ApplyInput applies every held key to the state. Each key is checked on its
// own, so Left+Up moves diagonally and R+E cancel out.
//
// rng is only consulted while C is held and may be nil otherwise.
func ApplyInput(s State, in Input, vp Viewport, rng Rand) State {
	minX, minY := s.Radius, s.Radius
	maxX := float32(vp.Width) - s.Radius
	maxY := float32(vp.Height) - s.Radius
	step := float32(s.Speed)

	held := in.Held
	if held.Has(KeyLeft) && s.Position.X > minX {
		s.Position.X = max(s.Position.X-step, minX)
	}
	if held.Has(KeyRight) && s.Position.X < maxX {
		s.Position.X = min(s.Position.X+step, maxX)
	}
	if held.Has(KeyUp) && s.Position.Y > minY {
		s.Position.Y = max(s.Position.Y-step, minY)
	}
	if held.Has(KeyDown) && s.Position.Y < maxY {
		s.Position.Y = min(s.Position.Y+step, maxY)
	}

	if held.Has(KeyR) {
		s.Radius++
	}
	if held.Has(KeyE) {
		s.Radius--
	}

	if held.Has(KeyF) && s.Speed < math.MaxUint8 {
		s.Speed++
	}
	if held.Has(KeyD) && s.Speed > 0 {
		s.Speed--
	}

	if held.Has(KeyC) {
		s.Color = rollColor(s.Color, rng)
	}

	return s
}

// Update advances the ball by one frame.
func Update(s State, in Input, vp Viewport, rng Rand) State {
	return ApplyInput(ClampToBounds(s, vp), in, vp, rng)
}

func rollColor(c Color, rng Rand) Color {
	if rng.IntN(colorRollSides)%colorRollEvery != 0 {
		return c
	}
	return RandomColor(c.A, rng)
}

// RandomColor returns a color with independent uniform R, G and B channels
// and the given alpha.
func RandomColor(alpha uint8, rng Rand) Color {
	return Color{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: alpha,
	}
}

// ColorChangeOdds is the chance that one frame with C held changes the color.
const ColorChangeOdds = 4.0 / 11.0
