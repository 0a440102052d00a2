/*
Package sparse implements a simple type for sparse integer matrices.
It is used for LL(1) parsing tables, where most cells of the table are empty
and every non-empty cell holds the number of a grammar rule.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

A matrix is filled once and then frozen. Frozen matrices are read-only and may
be shared between goroutines.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//     M.Freeze()                     // no more changes
//
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
	frozen  bool
}

type triplet struct {
	row, col int
	value    int32
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	k := m.search(i, j)
	if k < len(m.values) && m.values[k].storedAt(i, j) {
		return m.values[k].value
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j). Setting the null value clears
// the position. Set panics for frozen matrices and for positions out of range.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	if m.frozen {
		panic("sparse.IntMatrix.Set() called on frozen matrix")
	}
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix.Set() with index out of range: (%d,%d)", i, j))
	}
	k := m.search(i, j)
	if k < len(m.values) && m.values[k].storedAt(i, j) {
		if value == m.nullval {
			m.values = append(m.values[:k], m.values[k+1:]...)
		} else {
			m.values[k].value = value
		}
		return m
	}
	if value == m.nullval {
		return m
	}
	m.values = append(m.values, triplet{})
	copy(m.values[k+1:], m.values[k:])
	m.values[k] = triplet{row: i, col: j, value: value}
	return m
}

// Freeze makes the matrix read-only.
func (m *IntMatrix) Freeze() *IntMatrix {
	m.frozen = true
	return m
}

// IsFrozen is true after a call to Freeze.
func (m *IntMatrix) IsFrozen() bool {
	return m.frozen
}

// Row calls f for every non-null value in row i, in column order.
func (m *IntMatrix) Row(i int, f func(j int, value int32)) {
	for k := m.search(i, 0); k < len(m.values) && m.values[k].row == i; k++ {
		f(m.values[k].col, m.values[k].value)
	}
}

// RowCount returns the number of non-null values in row i.
func (m *IntMatrix) RowCount(i int) int {
	n := 0
	m.Row(i, func(int, int32) { n++ })
	return n
}

// Each calls f for every non-null value, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value)
	}
}

// search returns the index of the first triplet not stored left of (i,j).
func (m *IntMatrix) search(i, j int) int {
	return sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, j)
	})
}

func (t triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.value)
}
