package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bashtech/gpacalc-crawler/internal/grading"
)

// Tolerance for comparing point values against a scale
const Epsilon = 1e-6

// Match is a grading scale recovered from a table
type Match struct {
	Scale  float64
	Grades []grading.GradeRow
}

var (
	headerKeywords = []string{"grade", "letter", "points", "credit", "percentage", "marks"}

	pointsPattern     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	percentagePattern = regexp.MustCompile(`\b\d{1,3}\s*[-–]\s*\d{1,3}\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// tableCandidate carries one table through the strategy chain
type tableCandidate struct {
	table  *goquery.Selection
	rows   [][]string
	grades []grading.GradeRow
	scale  float64
}

// tableStrategy is one step of table interpretation; returning false drops the table
type tableStrategy struct {
	name  string
	apply func(c *tableCandidate) bool
}

var tableStrategies = []tableStrategy{
	{name: "grading header", apply: hasGradingHeader},
	{name: "data rows", apply: collectRows},
	{name: "grade rows", apply: extractGrades},
	{name: "scale", apply: inferScale},
	{name: "plausibility", apply: plausibleMagnitude},
	{name: "scale bound", apply: withinScale},
}

// Page is what a crawl needs from one fetched page: the grading table if there is
// one, otherwise the links to follow
type Page struct {
	Match Match
	Found bool
	Links []Link
}

// ParsePage parses HTML once and looks for a grading table. Links, resolved
// against base, are only collected when no table matched.
func ParsePage(r io.Reader, base string) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Page{}, fmt.Errorf("parsing HTML: %w", err)
	}
	if m, ok := ParseGradingTable(doc); ok {
		return Page{Match: m, Found: true}, nil
	}
	return Page{Links: ExtractLinks(doc, base)}, nil
}

// ParseGradingTable tries each table of the document in order and returns the first
// one that reads as a grading scale
func ParseGradingTable(doc *goquery.Document) (Match, bool) {
	var (
		result Match
		found  bool
	)

	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		if m, ok := interpretTable(table); ok {
			result = m
			found = true
			return false
		}
		return true
	})

	return result, found
}

func interpretTable(table *goquery.Selection) (Match, bool) {
	c := &tableCandidate{table: table}
	for _, strategy := range tableStrategies {
		if !strategy.apply(c) {
			return Match{}, false
		}
	}
	return Match{Scale: c.scale, Grades: c.grades}, true
}

func hasGradingHeader(c *tableCandidate) bool {
	parts := make([]string, 0)
	c.table.Find("th").Each(func(i int, th *goquery.Selection) {
		if text := cellText(th); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return false
	}

	header := strings.ToLower(strings.Join(parts, " "))
	for _, kw := range headerKeywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

func collectRows(c *tableCandidate) bool {
	c.table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := make([]string, 0)
		tr.Find("td").Each(func(j int, td *goquery.Selection) {
			cells = append(cells, cellText(td))
		})
		if len(cells) >= 2 {
			c.rows = append(c.rows, cells)
		}
	})
	return len(c.rows) >= 2
}

func extractGrades(c *tableCandidate) bool {
	for _, cells := range c.rows {
		if row, ok := parseGradeRow(cells); ok {
			c.grades = append(c.grades, row)
		}
	}
	return len(c.grades) > 0
}

// parseGradeRow reads the label from the first cell, points from the first numeric token
// after it, and a percentage range from the first later cell that looks like "NN-NN"
func parseGradeRow(cells []string) (grading.GradeRow, bool) {
	label := strings.TrimSpace(cells[0])
	if label == "" {
		return grading.GradeRow{}, false
	}

	pointsFound := false
	var points float64
	for _, cell := range cells[1:] {
		token := pointsPattern.FindString(cell)
		if token == "" {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		points = v
		pointsFound = true
		break
	}
	if !pointsFound {
		return grading.GradeRow{}, false
	}

	row := grading.GradeRow{Label: label, Points: points}
	for _, cell := range cells[1:] {
		if percentagePattern.MatchString(cell) {
			row.PercentageRange = strings.ReplaceAll(whitespacePattern.ReplaceAllString(cell, ""), "–", "-")
			break
		}
	}
	return row, true
}

func inferScale(c *tableCandidate) bool {
	tokens := make([]string, 0)
	c.table.Find("*").Each(func(i int, sel *goquery.Selection) {
		tokens = append(tokens, cellText(sel))
	})

	if scale, ok := GuessScale(tokens); ok {
		c.scale = scale
		return true
	}

	c.scale = maxPoints(c.grades)
	return c.scale > 0
}

// plausibleMagnitude drops tables whose numbers are too large for a small scale; these
// are usually percentage or enrolment tables that happen to mention grades.
// Known limitation: a real 100-point table is lost when a stray small cell drives the
// inferred scale to 10 or below.
func plausibleMagnitude(c *tableCandidate) bool {
	if c.scale > 10 {
		return true
	}
	for _, g := range c.grades {
		if g.Points > 10 {
			return false
		}
	}
	return true
}

func withinScale(c *tableCandidate) bool {
	for _, g := range c.grades {
		if g.Points < 0 || g.Points > c.scale+Epsilon {
			return false
		}
	}
	return true
}

func maxPoints(grades []grading.GradeRow) float64 {
	max := 0.0
	for _, g := range grades {
		if g.Points > max {
			max = g.Points
		}
	}
	return max
}

func cellText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
