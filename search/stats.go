package search

import (
	"fmt"
	"math"
)

// Stats is a running (Welford) accumulator of the Current score seen across
// a Trace, letting callers summarize a run without keeping every Record
// around or re-walking the slice.
type Stats struct {
	max, min float64
	mean     float64
	sumsq    float64 // sum of squares of deviation from the mean
	len      float64
}

// Insert folds x into the statistics and returns the updated accumulator.
func (s Stats) Insert(x float64) Stats {
	if s.len == 0 {
		s.max = math.Inf(-1)
		s.min = math.Inf(+1)
	}

	delta := x - s.mean
	newlen := s.len + 1

	s.max = math.Max(s.max, x)
	s.min = math.Min(s.min, x)
	s.mean += delta / newlen
	s.sumsq += delta * delta * (s.len / newlen)
	s.len = newlen

	return s
}

// Merge combines two independently accumulated Stats, as when summarizing
// several benchmark runs that were each tracked separately.
func (s Stats) Merge(t Stats) Stats {
	if t.len == 0 {
		return s
	}
	if s.len == 0 {
		return t
	}

	delta := t.mean - s.mean
	newlen := t.len + s.len

	s.max = math.Max(s.max, t.max)
	s.min = math.Min(s.min, t.min)
	s.mean += delta * (t.len / newlen)
	s.sumsq += t.sumsq
	s.sumsq += delta * delta * (t.len * s.len / newlen)
	s.len = newlen

	return s
}

// Max returns the largest score observed.
func (s Stats) Max() float64 { return s.max }

// Min returns the smallest score observed.
func (s Stats) Min() float64 { return s.min }

// Range returns Max minus Min.
func (s Stats) Range() float64 { return s.max - s.min }

// Mean returns the running average score.
func (s Stats) Mean() float64 { return s.mean }

// Variance returns the population variance of the scores seen so far.
func (s Stats) Variance() float64 {
	if s.len == 0 {
		return 0
	}
	return s.sumsq / s.len
}

// StdDeviation returns the population standard deviation of the scores
// seen so far.
func (s Stats) StdDeviation() float64 {
	return math.Sqrt(s.Variance())
}

// Len returns the number of scores folded into the accumulator.
func (s Stats) Len() int { return int(s.len) }

func (s Stats) String() string {
	return fmt.Sprintf("max=%f min=%f mean=%f sd=%f n=%d", s.max, s.min, s.mean, s.StdDeviation(), s.Len())
}

// Summarize folds every Record.Current in the trace into a Stats
// accumulator, in iteration order.
func (t Trace) Summarize() Stats {
	var s Stats
	for _, r := range t {
		s = s.Insert(r.Current)
	}
	return s
}
