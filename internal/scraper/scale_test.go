package scraper

import "testing"

func TestGuessScale(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   float64
		wantOK bool
	}{
		{"outstanding with ten", []string{"O", "Outstanding", "10"}, 10, true},
		{"o grade with ten", []string{"O grade carries 10 points"}, 10, true},
		{"outstanding without ten", []string{"Outstanding", "9"}, 0, false},
		{"cgpa ten point", []string{"CGPA", "computed on a 10 point scale"}, 10, true},
		{"sgpa over ten", []string{"SGPA 8.5/10"}, 10, true},
		{"ten point without gpa", []string{"10-point"}, 0, false},
		{"seven point", []string{"7-point scale"}, 7, true},
		{"over seven", []string{"grade 6/7"}, 7, true},
		{"four point oh", []string{"4.0 scale"}, 4, true},
		{"over four", []string{"3.7/4"}, 4, true},
		{"no cue", []string{"Grade", "Points", "A", "4.0"}, 0, false},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GuessScale(tt.tokens)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("GuessScale(%q) = %v, %v; want %v, %v", tt.tokens, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScaleRules_Order(t *testing.T) {
	// Both the outstanding cue and a /4 cue are present; the earlier rule wins
	got, ok := GuessScale([]string{"Outstanding", "10", "3.2/4"})
	if !ok || got != 10 {
		t.Errorf("GuessScale() = %v, %v; want 10, true", got, ok)
	}
}
