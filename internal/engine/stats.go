package engine

import (
	"math"
	"time"
)

// FrameStats accumulates frame timing for the lifetime of a Driver.
type FrameStats struct {
	Frames uint64
	Total  time.Duration
	Last   time.Duration
}

// Record adds one frame. Total saturates at the largest Duration instead of
// wrapping around.
func (s *FrameStats) Record(d time.Duration) {
	s.Frames++
	s.Last = d
	if d > 0 && s.Total > math.MaxInt64-d {
		s.Total = math.MaxInt64
		return
	}
	s.Total += d
}

// Average returns the mean frame time, or zero before the first frame.
func (s FrameStats) Average() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

// Saturated reports whether Total has hit its ceiling.
func (s FrameStats) Saturated() bool {
	return s.Total == math.MaxInt64
}
