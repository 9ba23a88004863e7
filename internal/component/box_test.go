package component

import (
	"errors"
	"math"
	"testing"
)

func TestBoxValidate(t *testing.T) {
	tests := []struct {
		name    string
		box     Box
		wantErr bool
	}{
		{"Valid", Box{X: 0, Y: 0, Size: 10}, false},
		{"Negative position is fine", Box{X: -5, Y: -5, Size: 1}, false},
		{"Zero size", Box{Size: 0}, true},
		{"Negative size", Box{Size: -1}, true},
		{"NaN size", Box{Size: math.NaN()}, true},
		{"Infinite size", Box{Size: math.Inf(1)}, true},
		{"NaN X", Box{X: math.NaN(), Size: 10}, true},
		{"Infinite Y", Box{Y: math.Inf(-1), Size: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.box.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("error %v does not wrap ErrInvalidGeometry", err)
			}
		})
	}
}

func TestBoxEdgesAndMoved(t *testing.T) {
	b := Box{X: 10, Y: 20, Size: 5}
	if b.Right() != 15 || b.Bottom() != 25 {
		t.Errorf("Right/Bottom = %v/%v, want 15/25", b.Right(), b.Bottom())
	}
	m := b.Moved(1, 2)
	if m != (Box{X: 1, Y: 2, Size: 5}) {
		t.Errorf("Moved() = %+v", m)
	}
	if b.X != 10 {
		t.Error("Moved() changed the receiver")
	}
}
