package algodct

import (
	"errors"
	"testing"
)

func TestGridFromRows(t *testing.T) {
	t.Parallel()

	g, err := GridFromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	if err != nil {
		t.Fatalf("GridFromRows() returned error: %v", err)
	}

	if g.H() != 3 || g.W() != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", g.H(), g.W())
	}

	if g.At(2, 1) != 6 {
		t.Fatalf("At(2, 1) = %v, want 6", g.At(2, 1))
	}

	g.Set(0, 0, 9)

	if g.Row(0)[0] != 9 {
		t.Fatalf("Row(0)[0] = %v, want 9 after Set", g.Row(0)[0])
	}
}

func TestGridFromRowsCopies(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}

	g, err := GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows() returned error: %v", err)
	}

	rows[0][0] = 99

	if g.At(0, 0) != 1 {
		t.Fatalf("grid shares storage with its source rows")
	}
}

func TestGridClone(t *testing.T) {
	t.Parallel()

	g := randomGrid(t, 3, 4, 11)
	c := g.Clone()

	assertGridClose(t, c, g, 0)

	c.Set(1, 1, -1)

	if g.At(1, 1) == -1 {
		t.Fatal("Clone() shares storage with the original")
	}
}

func TestGridErrors(t *testing.T) {
	t.Parallel()

	if _, err := NewGrid(0, 5); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("NewGrid(0, 5) error = %v, want ErrInvalidDimension", err)
	}

	if _, err := NewGrid(5, -2); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("NewGrid(5, -2) error = %v, want ErrInvalidDimension", err)
	}

	if _, err := GridFromRows(nil); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("GridFromRows(nil) error = %v, want ErrInvalidDimension", err)
	}

	if _, err := GridFromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("GridFromRows() with ragged rows error = %v, want ErrLengthMismatch", err)
	}
}
