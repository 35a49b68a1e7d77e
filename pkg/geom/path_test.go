package geom

import (
	"errors"
	"math"
	"testing"
)

var referencePath = Path{
	{X: 0, Y: 300}, {X: 200, Y: 300}, {X: 200, Y: 100},
	{X: 600, Y: 100}, {X: 600, Y: 500}, {X: 800, Y: 500},
}

func TestPathValidate(t *testing.T) {
	tests := []struct {
		name    string
		path    Path
		wantErr bool
	}{
		{"reference", referencePath, false},
		{"two points", Path{{0, 0}, {1, 1}}, false},
		{"single point", Path{{0, 0}}, true},
		{"empty", nil, true},
		{"nan", Path{{0, 0}, {math.NaN(), 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.path.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
	if err := (Path{{0, 0}}).Validate(); !errors.Is(err, ErrPathTooShort) {
		t.Fatalf("expected ErrPathTooShort, got %v", err)
	}
}

func TestPathLengthAndEnds(t *testing.T) {
	if got := referencePath.Length(); got != 1400 {
		t.Fatalf("Length()=%v, want 1400", got)
	}
	if referencePath.Spawn() != (Point{0, 300}) {
		t.Fatalf("Spawn()=%v", referencePath.Spawn())
	}
	if referencePath.Leak() != (Point{800, 500}) {
		t.Fatalf("Leak()=%v", referencePath.Leak())
	}
}

func TestPathDistanceTo(t *testing.T) {
	tests := []struct {
		pt   Point
		want float64
	}{
		{Point{100, 300}, 0},
		{Point{100, 320}, 20},
		{Point{250, 200}, 50},
		{Point{900, 500}, 100},
	}
	for _, tt := range tests {
		if got := referencePath.DistanceTo(tt.pt); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DistanceTo(%v)=%v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestStepToward(t *testing.T) {
	next, arrived := StepToward(Point{0, 0}, Point{10, 0}, 3)
	if arrived || next != (Point{3, 0}) {
		t.Fatalf("got %v arrived=%v", next, arrived)
	}
	next, arrived = StepToward(Point{8, 0}, Point{10, 0}, 3)
	if !arrived || next != (Point{10, 0}) {
		t.Fatalf("expected snap, got %v arrived=%v", next, arrived)
	}
	// exactly step away is not strictly less, so it moves without arriving
	next, arrived = StepToward(Point{7, 0}, Point{10, 0}, 3)
	if arrived || next != (Point{10, 0}) {
		t.Fatalf("got %v arrived=%v", next, arrived)
	}
}
