package colorEngine

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpHue interpolates between two hues along the shorter arc of the color
// wheel, so 350 -> 10 passes through 0 rather than 180.
func LerpHue(h1, h2, t float64) float64 {
	delta := floorMod(h2-h1+540, 360) - 180
	return floorMod(h1+delta*t+360, 360)
}

// LerpHSL interpolates hue circularly and saturation/lightness linearly
func LerpHSL(a, b HSL, t float64) HSL {
	return HSL{
		H: LerpHue(a.H, b.H, t),
		S: Lerp(a.S, b.S, t),
		L: Lerp(a.L, b.L, t),
	}
}

// ColorAt returns the gradient color for position i of total. The first
// half of the sequence blends start->mid and the second half mid->end.
// A total of 1 or less maps every position to the start anchor; t is not
// clamped for out-of-range positions.
func ColorAt(a Anchors, i, total int) (string, error) {
	t := 0.0
	if total > 1 {
		t = float64(i) / float64(total-1)
	}

	from, to := a.Start, a.Mid
	local := t / 0.5
	if t >= 0.5 {
		from, to = a.Mid, a.End
		local = (t - 0.5) / 0.5
	}

	c1, err := HexToHSL(from)
	if err != nil {
		return "", err
	}
	c2, err := HexToHSL(to)
	if err != nil {
		return "", err
	}

	return LerpHSL(c1, c2, local).Hex(), nil
}
