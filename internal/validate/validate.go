package validate

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/bashtech/gpacalc-crawler/internal/grading"
)

const (
	// DefaultCountry is the country whose systems are validated
	DefaultCountry = "India"

	// MinGrades is the fewest grade rows a valid system may have
	MinGrades = 3

	maxLabelLength = 20
	epsilon        = 1e-6
)

var (
	ErrScale          = errors.New("scale is not an admissible national scale")
	ErrTooFewGrades   = errors.New("too few grades")
	ErrLabel          = errors.New("label does not look like a grade")
	ErrPoints         = errors.New("points outside scale")
	ErrDuplicateLabel = errors.New("duplicate grade label")
)

// AdmissibleScales are the national scales accepted for the constrained country
var AdmissibleScales = []float64{10, 9, 8, 7, 6, 5, 4.33, 4, 100}

// labelRule classifies a grade label by shape
type labelRule struct {
	name    string
	pattern *regexp.Regexp
}

// labelRules accept a label if any pattern matches the whole label
var labelRules = []labelRule{
	{name: "letter code", pattern: regexp.MustCompile(`^[OSAUBCDFEP]{1,2}[+-]?$`)},
	{name: "letter grade", pattern: regexp.MustCompile(`^[A-D][+-]?$`)},
	{name: "word grade", pattern: regexp.MustCompile(`^(HD|First|Pass|Fail)$`)},
	{name: "numeric grade", pattern: regexp.MustCompile(`^\d{1,3}L?$`)},
}

// knownLabels are accepted verbatim
var knownLabels = map[string]bool{
	"O": true, "A+": true, "A": true, "A-": true,
	"B+": true, "B": true, "B-": true,
	"C+": true, "C": true, "C-": true,
	"D": true, "E": true, "P": true, "F": true, "HD": true,
}

// LabelKind returns the name of the rule that accepts label, or "" if none does
func LabelKind(label string) string {
	label = strings.TrimSpace(label)
	if label == "" || len(label) > maxLabelLength {
		return ""
	}
	for _, rule := range labelRules {
		if rule.pattern.MatchString(label) {
			return rule.name
		}
	}
	if knownLabels[label] {
		return "known label"
	}
	return ""
}

// IsAdmissibleScale reports whether scale is one of AdmissibleScales
func IsAdmissibleScale(scale float64) bool {
	for _, s := range AdmissibleScales {
		if math.Abs(s-scale) < epsilon {
			return true
		}
	}
	return false
}

// Check returns the first reason the system is implausible, or nil
func Check(sys grading.GradingSystem) error {
	if !IsAdmissibleScale(sys.Scale) {
		return fmt.Errorf("%w: %v", ErrScale, sys.Scale)
	}

	if len(sys.Grades) < MinGrades {
		return fmt.Errorf("%w: %d", ErrTooFewGrades, len(sys.Grades))
	}

	seen := make(map[string]bool, len(sys.Grades))
	for _, g := range sys.Grades {
		if g.Points < 0 || g.Points > sys.Scale+epsilon {
			return fmt.Errorf("%w: %q has %v on scale %v", ErrPoints, g.Label, g.Points, sys.Scale)
		}
		if LabelKind(g.Label) == "" {
			return fmt.Errorf("%w: %q", ErrLabel, g.Label)
		}
		if seen[g.Label] {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, g.Label)
		}
		seen[g.Label] = true
	}

	return nil
}

// IsValid reports whether the system passes Check
func IsValid(sys grading.GradingSystem) bool {
	return Check(sys) == nil
}

// Constrained reports whether sys belongs to country and is therefore subject to Check
func Constrained(sys grading.GradingSystem, country string) bool {
	return country != "" && strings.EqualFold(strings.TrimSpace(sys.Country), country)
}
