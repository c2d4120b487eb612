package core

import "testing"

func TestCellAdd(t *testing.T) {
	c := Cell{X: 7, Y: 7}

	if got := c.Add(1, 0); got != (Cell{X: 8, Y: 7}) {
		t.Errorf("Add(1, 0) = %v, expected (8, 7)", got)
	}
	if got := c.Add(0, -1); got != (Cell{X: 7, Y: 6}) {
		t.Errorf("Add(0, -1) = %v, expected (7, 6)", got)
	}
	// Value semantics: the receiver is unchanged
	if c != (Cell{X: 7, Y: 7}) {
		t.Errorf("Add must not mutate the receiver, got %v", c)
	}
}

func TestCellIn(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{15, 15}, true},
		{"x negative", Cell{-1, 0}, false},
		{"y negative", Cell{0, -1}, false},
		{"x at width", Cell{16, 3}, false},
		{"y at height", Cell{3, 16}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.In(16, 16); got != tc.expected {
				t.Errorf("In(16, 16) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCellAdjacent(t *testing.T) {
	c := Cell{X: 3, Y: 3}

	if !c.Adjacent(Cell{X: 4, Y: 3}) || !c.Adjacent(Cell{X: 3, Y: 2}) {
		t.Error("Orthogonal neighbours should be adjacent")
	}
	if c.Adjacent(Cell{X: 4, Y: 4}) {
		t.Error("Diagonal neighbours should not be adjacent")
	}
	if c.Adjacent(c) {
		t.Error("A cell is not adjacent to itself")
	}
	if c.Adjacent(Cell{X: 5, Y: 3}) {
		t.Error("Cells two steps apart are not adjacent")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)
	inner := outer.Centered(6, 4)

	if inner != NewRect(7, 3, 6, 4) {
		t.Errorf("Centered(6, 4) = %+v, expected {7 3 6 4}", inner)
	}
	if inner.Right() != 13 || inner.Bottom() != 7 {
		t.Errorf("Right/Bottom = %d/%d, expected 13/7", inner.Right(), inner.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min returned a wrong value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max returned a wrong value")
	}
}
