package geom

type Vector2 struct {
	X Element
	Y Element
}
