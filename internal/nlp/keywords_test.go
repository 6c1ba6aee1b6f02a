package nlp

import (
	"reflect"
	"testing"

	"levelup-api/internal/domain"
)

func TestExtractKeywordsFiltering(t *testing.T) {
	text := Normalize("I didn't go to the gym today, I just don't feel motivated at 10")
	got := ExtractKeywords(text, 5)

	for _, kw := range got {
		if len(kw) < 3 {
			t.Errorf("keyword %q shorter than 3", kw)
		}
		if stopWords[kw] {
			t.Errorf("keyword %q is a stop-word", kw)
		}
		if negators[kw] {
			t.Errorf("keyword %q is a negator", kw)
		}
		if badTopics[kw] {
			t.Errorf("keyword %q is a blocked topic", kw)
		}
		if numericToken.MatchString(kw) {
			t.Errorf("keyword %q is purely numeric", kw)
		}
	}

	want := []string{"gym", "motivated"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsRankingAndTies(t *testing.T) {
	// "gym" aparece dos veces; los demas empatan y quedan por primera aparicion
	text := "streak broken at the gym, still love the gym and the routine"
	got := ExtractKeywords(text, 4)
	want := []string{"gym", "streak", "broken", "still"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywordsLimits(t *testing.T) {
	if got := ExtractKeywords("gym routine streak", 0); got != nil {
		t.Fatalf("n=0 should return nil, got %v", got)
	}
	if got := ExtractKeywords("", 5); len(got) != 0 {
		t.Fatalf("empty text should return no keywords, got %v", got)
	}
	if got := ExtractKeywords("gym routine streak focus sleep water", 2); len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %v", got)
	}
}

func TestChooseTopic(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		text     string
		mood     domain.Mood
		want     string
	}{
		{
			name:     "first keyword wins",
			keywords: []string{"workout", "proud"},
			text:     "I finished my workout today, proud of myself",
			mood:     domain.MoodPositive,
			want:     "workout",
		},
		{
			name:     "positive keyword rejected under negative mood",
			keywords: []string{"proud", "gym"},
			text:     "not proud of skipping the gym",
			mood:     domain.MoodNegative,
			want:     "gym",
		},
		{
			name:     "fallback to text scan",
			keywords: nil,
			text:     "quick note about the garden",
			mood:     domain.MoodNeutral,
			want:     "quick",
		},
		{
			name:     "fallback to this on empty text",
			keywords: nil,
			text:     "   ",
			mood:     domain.MoodNeutral,
			want:     "this",
		},
		{
			name:     "guard downgrades non-alphabetic topic",
			keywords: []string{"self-care"},
			text:     "",
			mood:     domain.MoodNeutral,
			want:     "this",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseTopic(tt.keywords, tt.text, tt.mood)
			if got != tt.want {
				t.Fatalf("ChooseTopic(%v, %q, %v) = %q, want %q", tt.keywords, tt.text, tt.mood, got, tt.want)
			}
		})
	}
}

func TestChooseTopicNeverPositiveUnderNegativeMood(t *testing.T) {
	texts := []string{
		"not proud today, everything was rough",
		"happy words happy words happy again",
	}
	for _, text := range texts {
		keywords := ExtractKeywords(text, 5)
		topic := ChooseTopic(keywords, text, domain.MoodNegative)
		if positiveWords[topic] {
			t.Errorf("topic %q from %q is positive under negative mood", topic, text)
		}
	}
}

func TestFilterQueryKeywords(t *testing.T) {
	in := []string{"gym", "be", "self-care", "2024", "today", "proud", "streak"}

	neutral := FilterQueryKeywords(in, domain.MoodNeutral)
	wantNeutral := []string{"gym", "proud", "streak"}
	if !reflect.DeepEqual(neutral, wantNeutral) {
		t.Fatalf("neutral filter = %v, want %v", neutral, wantNeutral)
	}

	negative := FilterQueryKeywords(in, domain.MoodNegative)
	wantNegative := []string{"gym", "streak"}
	if !reflect.DeepEqual(negative, wantNegative) {
		t.Fatalf("negative filter = %v, want %v", negative, wantNegative)
	}
}
