package component

// Enemy представляет преследующего врага.
type Enemy struct {
	Box
	Speed float64 `json:"speed"` // Пикселей за тик преследования
}
