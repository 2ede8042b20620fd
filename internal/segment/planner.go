package segment

import (
	"fmt"
	"math"
)

// Segment is a contiguous time-bounded slice of a source media file's
// duration. Indexes are 1-based and sequential.
type Segment struct {
	Index        int     `json:"index"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	OutputName   string  `json:"output_name"`
}

// Duration returns the length of the segment in seconds
func (s Segment) Duration() float64 {
	return s.EndSeconds - s.StartSeconds
}

// Plan computes the ordered list of fixed-length segments covering a total
// duration. Segments are contiguous and non-overlapping: each segment starts
// where the previous one ended, and the final segment ends exactly at
// totalSeconds. A zero total duration yields zero segments.
func Plan(totalSeconds, unitSeconds float64, baseName string) ([]Segment, error) {
	if unitSeconds <= 0 {
		return nil, fmt.Errorf("unit duration must be positive, got %v", unitSeconds)
	}
	if totalSeconds < 0 {
		return nil, fmt.Errorf("total duration must be non-negative, got %v", totalSeconds)
	}

	count := int(math.Ceil(totalSeconds / unitSeconds))
	segments := make([]Segment, 0, count)

	for i := 1; i <= count; i++ {
		start := float64(i-1) * unitSeconds
		end := float64(i) * unitSeconds
		if end > totalSeconds {
			end = totalSeconds
		}
		segments = append(segments, Segment{
			Index:        i,
			StartSeconds: start,
			EndSeconds:   end,
			OutputName:   fmt.Sprintf("%s_%d", baseName, i),
		})
	}

	return segments, nil
}
