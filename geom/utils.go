package geom

import "math"

func Abs(v Element) Element {
	if v < 0 {
		return -v
	}
	return v
}

func DegToRad(d Element) Element {
	return d * math.Pi / 180
}

func RadToDeg(r Element) Element {
	return r * 180 / math.Pi
}
