package sparse

import "testing"

func TestSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != M.NullValue() {
		t.Errorf("expected M(3,2) to be null, is %d", v)
	}
	M.Set(2, 3, 1)
	if M.ValueCount() != 1 {
		t.Errorf("expected overwrite to keep value count at 1, is %d", M.ValueCount())
	}
}

func TestRowOrder(t *testing.T) {
	M := NewIntMatrix(4, 5, -1)
	M.Set(1, 4, 14)
	M.Set(3, 0, 30)
	M.Set(1, 0, 10)
	M.Set(0, 2, 2)
	M.Set(1, 2, 12)
	var cols []int
	M.Row(1, func(j int, v int32) {
		cols = append(cols, j)
		if int32(10+j) != v {
			t.Errorf("unexpected value %d at (1,%d)", v, j)
		}
	})
	if len(cols) != 3 || cols[0] != 0 || cols[1] != 2 || cols[2] != 4 {
		t.Errorf("expected columns [0 2 4] in row 1, have %v", cols)
	}
	if M.RowCount(2) != 0 {
		t.Errorf("expected row 2 to be empty")
	}
	prev := -1
	M.Each(func(i, j int, v int32) {
		if pos := i*M.N() + j; pos <= prev {
			t.Errorf("values not in row-major order at (%d,%d)", i, j)
		} else {
			prev = pos
		}
	})
}

func TestClearWithNull(t *testing.T) {
	M := NewIntMatrix(3, 3, 0)
	M.Set(1, 1, 5)
	M.Set(1, 1, 0)
	if M.ValueCount() != 0 {
		t.Errorf("expected value to be cleared, count is %d", M.ValueCount())
	}
}

func TestFrozenPanics(t *testing.T) {
	M := NewIntMatrix(2, 2, DefaultNullValue).Freeze()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set on frozen matrix to panic")
		}
	}()
	M.Set(0, 0, 1)
}
