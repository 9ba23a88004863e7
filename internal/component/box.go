// internal/component/box.go
package component

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry — коробка с неположительным размером или нечисловыми координатами.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Box — квадрат, выровненный по осям. X, Y — левый верхний угол, Size — длина стороны.
type Box struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// Right возвращает координату правого края.
func (b Box) Right() float64 {
	return b.X + b.Size
}

// Bottom возвращает координату нижнего края.
func (b Box) Bottom() float64 {
	return b.Y + b.Size
}

// Moved возвращает копию коробки, сдвинутую в точку (x, y).
func (b Box) Moved(x, y float64) Box {
	b.X = x
	b.Y = y
	return b
}

// Validate проверяет инварианты коробки. Движок сам её не вызывает,
// проверка нужна при загрузке внешних данных (уровней).
func (b Box) Validate() error {
	if math.IsNaN(b.X) || math.IsInf(b.X, 0) || math.IsNaN(b.Y) || math.IsInf(b.Y, 0) {
		return fmt.Errorf("%w: non-finite position (%v, %v)", ErrInvalidGeometry, b.X, b.Y)
	}
	if !(b.Size > 0) || math.IsInf(b.Size, 0) {
		return fmt.Errorf("%w: size must be positive, got %v", ErrInvalidGeometry, b.Size)
	}
	return nil
}
