package cli

import (
	"testing"

	"github.com/permlens/permlens/pkg/layout"
)

func TestNextDirection(t *testing.T) {
	tests := []struct {
		from, want layout.Direction
	}{
		{layout.DirectionTB, layout.DirectionLR},
		{layout.DirectionLR, layout.DirectionBT},
		{layout.DirectionBT, layout.DirectionRL},
		{layout.DirectionRL, layout.DirectionTB},
	}

	for _, tt := range tests {
		if got := nextDirection(tt.from); got != tt.want {
			t.Errorf("nextDirection(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestNextDirectionCyclesBack(t *testing.T) {
	d := layout.DirectionTB
	for i := 0; i < 4; i++ {
		d = nextDirection(d)
	}
	if d != layout.DirectionTB {
		t.Errorf("four steps should return to TB, got %s", d)
	}
}
