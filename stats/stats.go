// Package stats keeps running statistics over simulated games: scores,
// margins, round counts, and the like.
package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance over a stream of values, plus
// the smallest and largest values seen. Values are kept so that they can
// be bucketed into a histogram afterwards.
type Statistic struct {
	n    int
	last float64
	min  float64
	max  float64

	// Welford's algorithm.
	mean float64
	m2   float64

	keep   bool
	values []float64
}

// NewStatistic returns a statistic. If keepValues is set, every pushed
// value is retained and available from Values.
func NewStatistic(keepValues bool) *Statistic {
	return &Statistic{keep: keepValues}
}

func (s *Statistic) Push(val float64) {
	s.last = val
	s.n++
	if s.keep {
		s.values = append(s.values, val)
	}
	if s.n == 1 {
		s.mean, s.m2 = val, 0
		s.min, s.max = val, val
		return
	}
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
	s.min = math.Min(s.min, val)
	s.max = math.Max(s.max, val)
}

// PushInt is Push for integer-valued samples such as scores.
func (s *Statistic) PushInt(val int) {
	s.Push(float64(val))
}

// Merge folds another statistic into this one, as if all of its values
// had been pushed here. Last is left alone.
func (s *Statistic) Merge(o *Statistic) {
	if o.n == 0 {
		return
	}
	if s.keep {
		s.values = append(s.values, o.values...)
	}
	if s.n == 0 {
		s.n, s.mean, s.m2, s.min, s.max = o.n, o.mean, o.m2, o.min, o.max
		return
	}
	n := s.n + o.n
	delta := o.mean - s.mean
	s.m2 += o.m2 + delta*delta*float64(s.n)*float64(o.n)/float64(n)
	s.mean += delta * float64(o.n) / float64(n)
	s.n = n
	s.min = math.Min(s.min, o.min)
	s.max = math.Max(s.max, o.max)
}

func (s *Statistic) Mean() float64 {
	if s.n > 0 {
		return s.mean
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Last() float64 {
	return s.last
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

// StandardError returns the standard error of the mean.
func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

// ConfidenceInterval returns the half-width of the confidence interval
// around the mean, for a confidence given in percent.
func (s *Statistic) ConfidenceInterval(confidence float64) float64 {
	return ZVal(confidence) * s.StandardError()
}

func (s *Statistic) Iterations() int {
	return s.n
}

// Values returns the retained values, or nil if they weren't kept.
func (s *Statistic) Values() []float64 {
	return s.values
}
