package stats

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.PushInt(score)
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Iterations(), len(c.scores))
	}
}

func TestMinMax(t *testing.T) {
	is := is.New(t)
	s := NewStatistic(true)
	for _, v := range []float64{7, -3, 12, 0} {
		s.Push(v)
	}
	is.Equal(s.Min(), -3.0)
	is.Equal(s.Max(), 12.0)
	is.Equal(s.Last(), 0.0)
	is.Equal(s.Values(), []float64{7, -3, 12, 0})
}

func TestMerge(t *testing.T) {
	is := is.New(t)
	all := []int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}
	a, b := NewStatistic(true), NewStatistic(true)
	for i, v := range all {
		if i < 4 {
			a.PushInt(v)
		} else {
			b.PushInt(v)
		}
	}
	a.Merge(b)
	is.Equal(a.Iterations(), len(all))
	is.True(FuzzyEqual(a.Mean(), 47.2))
	is.True(FuzzyEqual(a.Stdev(), 36.937785531891))
	is.Equal(a.Min(), 10.0)
	is.Equal(a.Max(), 124.0)
	is.Equal(len(a.Values()), len(all))

	empty := &Statistic{}
	empty.Merge(a)
	is.True(FuzzyEqual(empty.Mean(), 47.2))
}

func TestZVal(t *testing.T) {
	assert.InDelta(t, 1.959964, ZVal(95), 1e-5)
	assert.InDelta(t, 2.575829, ZVal(99), 1e-5)
	assert.InDelta(t, 0.0, ZVal(0), 1e-9)
}

func TestConfidenceInterval(t *testing.T) {
	s := &Statistic{}
	assert.Equal(t, 0.0, s.ConfidenceInterval(95))
	for _, v := range []int{10, 12, 23, 23, 16, 23, 21, 16} {
		s.PushInt(v)
	}
	assert.InDelta(t, 1.959964*5.2372293656638/2.8284271247, s.ConfidenceInterval(95), 1e-4)
}
