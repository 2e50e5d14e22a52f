package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix[T DType](t *testing.T, rows [][]T) *Tensor[T] {
	t.Helper()
	m, err := Matrix(rows)
	require.NoError(t, err)
	return m
}

func assertMatrix(t *testing.T, expected [][]float64, actual *Tensor[float64], msg string) {
	t.Helper()
	require.Equal(t, []int{len(expected), len(expected[0])}, actual.Shape().Bounds(), "%s: shape", msg)
	for i := range expected {
		for j := range expected[i] {
			v, err := actual.Get(i, j)
			require.NoError(t, err)
			assert.InDelta(t, expected[i][j], v, 1e-12, "%s at [%d %d]", msg, i, j)
		}
	}
}

func TestScaleAssign(t *testing.T) {
	tn := mustMatrix(t, [][]float64{
		{1, 0, 1},
		{2, 1, 1},
		{0, 1, 1},
		{1, 1, 2},
	})
	require.NoError(t, tn.ScaleAssign(2.0))
	assertMatrix(t, [][]float64{
		{2, 0, 2},
		{4, 2, 2},
		{0, 2, 2},
		{2, 2, 4},
	}, tn, "ScaleAssign")
}

func TestDivideAssign(t *testing.T) {
	tn := mustMatrix(t, [][]float64{
		{2, 0, 2},
		{4, 2, 2},
		{0, 2, 2},
		{2, 2, 4},
	})
	require.NoError(t, tn.DivideAssign(2.0))
	assertMatrix(t, [][]float64{
		{1, 0, 1},
		{2, 1, 1},
		{0, 1, 1},
		{1, 1, 2},
	}, tn, "DivideAssign")
}

func TestScaleRoundTrip(t *testing.T) {
	tn := Random(7, 5, 3)
	orig := tn.Clone()

	require.NoError(t, tn.ScaleAssign(2.0))
	require.NoError(t, tn.DivideAssign(2.0))

	want, got := orig.Values(), tn.Values()
	for i := range want {
		assert.Less(t, math.Abs(want[i]-got[i]), 1e-9, "element %d", i)
	}
	assert.True(t, tn.Equal(orig, 1e-9))
}

func TestScaleThroughInterface(t *testing.T) {
	var ew ElementWiser[int32] = New([]int{3}, int32(4))
	require.NoError(t, Scale(ew, 3))
	require.NoError(t, Shift(ew, -2))
	require.NoError(t, Divide(ew, 5))
	assert.Equal(t, []int32{2, 2, 2}, ew.(*Tensor[int32]).Values())
}

func TestAddAssignSubAssign(t *testing.T) {
	a := mustMatrix(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	b := mustMatrix(t, [][]float64{
		{9, 8, 7},
		{6, 5, 4},
		{3, 2, 1},
	})

	require.NoError(t, a.AddAssign(b))
	assertMatrix(t, [][]float64{
		{10, 10, 10},
		{10, 10, 10},
		{10, 10, 10},
	}, a, "AddAssign")

	require.NoError(t, a.SubAssign(b))
	require.NoError(t, a.SubAssign(b))
	assertMatrix(t, [][]float64{
		{-8, -6, -4},
		{-2, 0, 2},
		{4, 6, 8},
	}, a, "SubAssign")

	require.NoError(t, b.MulAssign(b))
	assertMatrix(t, [][]float64{
		{81, 64, 49},
		{36, 25, 16},
		{9, 4, 1},
	}, b, "MulAssign")
}

func TestAddAssignErrors(t *testing.T) {
	a := New([]int{2, 2}, 1.0)
	require.ErrorIs(t, a.AddAssign(New([]int{2, 3}, 1.0)), ErrIncompatibleShapes)

	view, err := a.Nested()
	require.NoError(t, err)
	err = a.AddAssign(New([]int{2, 2}, 1.0))
	require.ErrorIs(t, err, ErrSharedBuffer)
	require.ErrorIs(t, a.ScaleAssign(2), ErrSharedBuffer)
	require.ErrorIs(t, a.DivideAssign(2), ErrSharedBuffer)

	// A failed accumulation leaves the tensor untouched.
	assert.Equal(t, []float64{1, 1, 1, 1}, view.Values())

	view.Release()
	require.NoError(t, a.AddAssign(New([]int{2, 2}, 1.0)))
	assert.Equal(t, []float64{2, 2, 2, 2}, a.Values())
}

func TestPairWiseShorthands(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	b := mustMatrix(t, [][]float64{{4, 3}, {2, 1}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{5, 5}, {5, 5}}, sum, "Add")

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{-3, -1}, {1, 3}}, diff, "Sub")

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{4, 6}, {6, 4}}, prod, "Mul")

	quot, err := a.Div(b)
	require.NoError(t, err)
	assertMatrix(t, [][]float64{{0.25, 2.0 / 3.0}, {1.5, 4}}, quot, "Div")

	_, err = a.Add(New([]int{2}, 1.0))
	require.ErrorIs(t, err, ErrIncompatibleShapes)
}

func TestMapDoesNotMutate(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	view, err := a.Nested()
	require.NoError(t, err)

	doubled := view.MulScalar(2)
	assertMatrix(t, [][]float64{{2, 4, 6}, {8, 10, 12}, {14, 16, 18}}, doubled, "MulScalar")

	squared := a.Powi(2)
	assertMatrix(t, [][]float64{{1, 4, 9}, {16, 25, 36}, {49, 64, 81}}, squared, "Powi")

	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, a.Values())
	assertMatrix(t, [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, a.Powi(0), "Powi(0)")
}

func TestSumMean(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	assert.InDelta(t, 10.0, m.Sum(), 1e-12)
	assert.InDelta(t, 2.5, m.Mean(), 1e-12)

	ints := mustMatrix(t, [][]int64{{1, 2}, {3, 5}})
	assert.Equal(t, int64(11), ints.Sum())
	assert.InDelta(t, 2.75, ints.Mean(), 1e-12)

	tn, err := Tensor3D(fixture3D())
	require.NoError(t, err)
	slice, err := tn.Nested(1)
	require.NoError(t, err)
	assert.InDelta(t, 54.0, slice.Sum(), 1e-12)

	assert.True(t, math.IsNaN(New[float64](nil, 0).Mean()))
}

func TestEqual(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {2, 3, 4}})
	b := mustMatrix(t, [][]float64{{1, 2, 3}, {2, 3, 4}})
	assert.True(t, a.Equal(b, 1e-12))

	c := mustMatrix(t, [][]float64{{5, 2, 3}, {2, 3, 4}})
	assert.False(t, a.Equal(c, 1e-12))

	d := mustMatrix(t, [][]float64{{5, 2}, {2, 3}})
	assert.False(t, a.Equal(d, 1e-12))
}
