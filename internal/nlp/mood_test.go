package nlp

import (
	"testing"

	"levelup-api/internal/domain"
)

func TestClassifyMoodBands(t *testing.T) {
	tests := []struct {
		name     string
		polarity float64
		want     domain.Mood
	}{
		{name: "strong positive", polarity: 0.9, want: domain.MoodPositive},
		{name: "just above threshold", polarity: 0.21, want: domain.MoodPositive},
		{name: "at threshold is neutral", polarity: 0.2, want: domain.MoodNeutral},
		{name: "zero", polarity: 0.0, want: domain.MoodNeutral},
		{name: "at negative threshold is neutral", polarity: -0.2, want: domain.MoodNeutral},
		{name: "just below threshold", polarity: -0.21, want: domain.MoodNegative},
		{name: "strong negative", polarity: -1.0, want: domain.MoodNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyMood(tt.polarity); got != tt.want {
				t.Fatalf("ClassifyMood(%v) = %v, want %v", tt.polarity, got, tt.want)
			}
		})
	}
}

func TestClassifyMoodMonotonicAndExhaustive(t *testing.T) {
	rank := map[domain.Mood]int{
		domain.MoodNegative: -1,
		domain.MoodNeutral:  0,
		domain.MoodPositive: 1,
	}

	prev := -2
	for p := -1.0; p <= 1.0; p += 0.01 {
		mood := ClassifyMood(p)
		r, ok := rank[mood]
		if !ok {
			t.Fatalf("ClassifyMood(%v) = %v, outside the three bands", p, mood)
		}
		if r < prev {
			t.Fatalf("ClassifyMood not monotonic at %v", p)
		}
		prev = r
	}
}

func TestClassifyMoodSymmetric(t *testing.T) {
	for _, p := range []float64{0.05, 0.2, 0.25, 0.5, 1.0} {
		pos := ClassifyMood(p)
		neg := ClassifyMood(-p)
		if (pos == domain.MoodPositive) != (neg == domain.MoodNegative) {
			t.Errorf("asymmetric classification at |p|=%v: %v vs %v", p, pos, neg)
		}
	}
}
