package search

import "time"

// Record is one row of a Trace: the elapsed wall-clock time, the best and
// current scores observed so far, and the iteration count at the moment
// the record was taken.
type Record struct {
	ElapsedNS  int64
	Best       float64
	Current    float64
	Iterations uint64
}

// Trace is the ordered sequence of Records a driver's Run returns. Within a
// single run, ElapsedNS is monotonically non-decreasing.
type Trace []Record

// clock measures elapsed wall-clock time from a fixed start, for stamping
// Record.ElapsedNS.
type clock struct {
	start time.Time
}

func newClock() clock {
	return clock{start: time.Now()}
}

func (c clock) elapsed() int64 {
	return time.Since(c.start).Nanoseconds()
}
