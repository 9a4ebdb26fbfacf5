package fontsheet

import (
	"errors"
	"image"
	"testing"
)

func TestGridBounds(t *testing.T) {
	for _, g := range []Grid{
		{Columns: 12, Rows: 8, CellWidth: 8, CellHeight: 16},
		{Columns: 16, Rows: 16, CellWidth: 8, CellHeight: 8},
		{Columns: 1, Rows: 1, CellWidth: 5, CellHeight: 7},
		{Columns: 3, Rows: 5, CellWidth: 12, CellHeight: 20},
	} {
		b := g.Bounds()
		if b.Dx() != g.Columns*g.CellWidth || b.Dy() != g.Rows*g.CellHeight {
			t.Errorf("%+v: bounds %v", g, b)
		}
		if g.Capacity() != g.Columns*g.Rows {
			t.Errorf("%+v: capacity %d", g, g.Capacity())
		}
		// every cell is inside the sheet and cells do not overlap
		seen := make(map[image.Point]bool)
		for i := 0; i < g.Capacity(); i++ {
			c := g.Cell(i)
			if !c.In(b) {
				t.Errorf("%+v: cell %d %v outside %v", g, i, c, b)
			}
			if seen[c.Min] {
				t.Errorf("%+v: cell %d overlaps", g, i)
			}
			seen[c.Min] = true
		}
	}
}

func TestGridFor(t *testing.T) {
	g, err := GridFor(image.Rect(0, 0, 96, 128), 8, 16)
	if err != nil {
		t.Fatal(err)
	}
	if g.Columns != 12 || g.Rows != 8 {
		t.Errorf("got %dx%d cells, want 12x8", g.Columns, g.Rows)
	}
	if got, want := g.Cell(13), image.Rect(8, 16, 16, 32); got != want {
		t.Errorf("cell 13 = %v, want %v", got, want)
	}
}

func TestGridForMismatch(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 100, 128),
		image.Rect(0, 0, 96, 120),
		image.Rect(0, 0, 0, 0),
	} {
		if _, err := GridFor(r, 8, 16); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%v: got %v, want ErrDimensionMismatch", r, err)
		}
	}
	if _, err := GridFor(image.Rect(0, 0, 8, 8), 0, 8); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("zero cell width: got %v", err)
	}
}

func TestGridValidate(t *testing.T) {
	if err := (Grid{Columns: 12, Rows: 8, CellWidth: 8, CellHeight: 16}).Validate(); err != nil {
		t.Error(err)
	}
	if err := (Grid{Columns: 12, Rows: 0, CellWidth: 8, CellHeight: 16}).Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("got %v, want ErrInvalidGrid", err)
	}
}
