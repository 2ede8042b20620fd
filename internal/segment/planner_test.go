package segment

import (
	"fmt"
	"math"
	"testing"
)

func TestPlanThirtyMinuteSegments(t *testing.T) {
	segments, err := Plan(5400, 1800, "myVideo")
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(segments))
	}

	want := []struct {
		start, end float64
		name       string
	}{
		{0, 1800, "myVideo_1"},
		{1800, 3600, "myVideo_2"},
		{3600, 5400, "myVideo_3"},
	}

	for i, w := range want {
		s := segments[i]
		if s.Index != i+1 {
			t.Errorf("segment %d: Index = %d, want %d", i, s.Index, i+1)
		}
		if s.StartSeconds != w.start || s.EndSeconds != w.end {
			t.Errorf("segment %d: window [%v,%v), want [%v,%v)", i, s.StartSeconds, s.EndSeconds, w.start, w.end)
		}
		if s.OutputName != w.name {
			t.Errorf("segment %d: OutputName = %q, want %q", i, s.OutputName, w.name)
		}
	}
}

func TestPlanEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		unit     float64
		expected int
	}{
		{
			name:     "Zero duration yields zero segments",
			total:    0,
			unit:     1800,
			expected: 0,
		},
		{
			name:     "Duration equal to unit yields one segment",
			total:    1800,
			unit:     1800,
			expected: 1,
		},
		{
			name:     "Partial trailing segment",
			total:    1801,
			unit:     1800,
			expected: 2,
		},
		{
			name:     "Duration shorter than unit",
			total:    42,
			unit:     1800,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := Plan(tt.total, tt.unit, "clip")
			if err != nil {
				t.Fatalf("Plan returned error: %v", err)
			}
			if len(segments) != tt.expected {
				t.Fatalf("Expected %d segments, got %d", tt.expected, len(segments))
			}
			if tt.expected > 0 {
				last := segments[len(segments)-1]
				if last.EndSeconds != tt.total {
					t.Errorf("Last segment ends at %v, want %v", last.EndSeconds, tt.total)
				}
			}
		})
	}
}

func TestPlanInvariants(t *testing.T) {
	durations := []struct{ total, unit float64 }{
		{5400, 1800},
		{7321.5, 600},
		{0.5, 30},
		{3600, 3600},
		{99999, 1234},
	}

	for _, d := range durations {
		t.Run(fmt.Sprintf("total=%v unit=%v", d.total, d.unit), func(t *testing.T) {
			segments, err := Plan(d.total, d.unit, "v")
			if err != nil {
				t.Fatalf("Plan returned error: %v", err)
			}

			var sum float64
			for i, s := range segments {
				sum += s.Duration()
				if i > 0 && s.StartSeconds != segments[i-1].EndSeconds {
					t.Errorf("segment %d not contiguous: start %v != previous end %v",
						s.Index, s.StartSeconds, segments[i-1].EndSeconds)
				}
				if s.EndSeconds < s.StartSeconds {
					t.Errorf("segment %d has negative duration", s.Index)
				}
			}

			if math.Abs(sum-d.total) > 1e-6 {
				t.Errorf("Segment durations sum to %v, want %v", sum, d.total)
			}
			if len(segments) > 0 && segments[len(segments)-1].EndSeconds != d.total {
				t.Errorf("Last segment end = %v, want %v", segments[len(segments)-1].EndSeconds, d.total)
			}
		})
	}
}

func TestPlanRejectsBadInput(t *testing.T) {
	if _, err := Plan(100, 0, "v"); err == nil {
		t.Error("Expected error for zero unit duration")
	}
	if _, err := Plan(100, -5, "v"); err == nil {
		t.Error("Expected error for negative unit duration")
	}
	if _, err := Plan(-1, 30, "v"); err == nil {
		t.Error("Expected error for negative total duration")
	}
}
