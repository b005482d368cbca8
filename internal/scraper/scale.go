package scraper

import (
	"regexp"
	"strings"
)

// scaleRule maps a textual cue in a table to the point scale it implies
type scaleRule struct {
	name    string
	matches func(text string) bool
	scale   float64
}

func allOf(patterns ...*regexp.Regexp) func(string) bool {
	return func(text string) bool {
		for _, p := range patterns {
			if !p.MatchString(text) {
				return false
			}
		}
		return true
	}
}

var (
	outstandingPattern = regexp.MustCompile(`\b(outstanding|o\s*grade)\b`)
	tenPattern         = regexp.MustCompile(`10`)
	gpaPattern         = regexp.MustCompile(`\b(sgpa|cgpa)\b`)
	tenPointPattern    = regexp.MustCompile(`10\s*point|10-point|\b/10\b`)
	sevenPointPattern  = regexp.MustCompile(`7\s*point|7-point|\b/7\b`)
	fourPointPattern   = regexp.MustCompile(`\b/4\b|4\.0\s*scale`)
)

// scaleRules are checked in order against the lowercased table text; first match wins
var scaleRules = []scaleRule{
	{name: "outstanding grade on 10", matches: allOf(outstandingPattern, tenPattern), scale: 10},
	{name: "sgpa/cgpa on 10", matches: allOf(gpaPattern, tenPointPattern), scale: 10},
	{name: "7 point", matches: allOf(sevenPointPattern), scale: 7},
	{name: "4.0 scale", matches: allOf(fourPointPattern), scale: 4},
}

// GuessScale returns the scale implied by cues in the given text fragments, if any
func GuessScale(tokens []string) (float64, bool) {
	joined := strings.ToLower(strings.Join(tokens, " "))
	for _, rule := range scaleRules {
		if rule.matches(joined) {
			return rule.scale, true
		}
	}
	return 0, false
}
