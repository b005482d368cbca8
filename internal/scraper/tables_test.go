package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bashtech/gpacalc-crawler/internal/grading"
	"github.com/google/go-cmp/cmp"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

const tenPointTable = `
<table class="wikitable">
  <tr><th>Letter Grade</th><th>Grade Point</th><th>Marks</th></tr>
  <tr><td>O (Outstanding)</td><td>10</td><td>91 - 100</td></tr>
  <tr><td>A+</td><td>9</td><td>81-90</td></tr>
  <tr><td>A</td><td>8</td><td>71-80</td></tr>
  <tr><td>B+</td><td>7</td><td>61-70</td></tr>
</table>`

func TestParseGradingTable(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantOK    bool
		wantScale float64
		wantRows  int
	}{
		{
			name:      "ten point table with outstanding cue",
			html:      tenPointTable,
			wantOK:    true,
			wantScale: 10,
			wantRows:  4,
		},
		{
			name: "no grading keyword in header",
			html: `<table>
				<tr><th>Campus</th><th>Students</th></tr>
				<tr><td>North</td><td>4</td></tr>
				<tr><td>South</td><td>3</td></tr>
			</table>`,
			wantOK: false,
		},
		{
			name: "no header cells at all",
			html: `<table>
				<tr><td>A</td><td>4</td></tr>
				<tr><td>B</td><td>3</td></tr>
			</table>`,
			wantOK: false,
		},
		{
			name: "large numbers under a ten point cue are rejected",
			html: `<table>
				<caption>CGPA on a 10-point scale</caption>
				<tr><th>Grade</th><th>Students</th></tr>
				<tr><td>A</td><td>12</td></tr>
				<tr><td>B</td><td>45</td></tr>
				<tr><td>C</td><td>67</td></tr>
				<tr><td>D</td><td>89</td></tr>
			</table>`,
			wantOK: false,
		},
		{
			name: "scale falls back to maximum points",
			html: `<table>
				<tr><th>Grade</th><th>Points</th></tr>
				<tr><td>A</td><td>4.0</td></tr>
				<tr><td>B</td><td>3.0</td></tr>
				<tr><td>C</td><td>2.0</td></tr>
			</table>`,
			wantOK:    true,
			wantScale: 4,
			wantRows:  3,
		},
		{
			name: "hundred mark table keeps its magnitude",
			html: `<table>
				<tr><th>Grade</th><th>Marks</th></tr>
				<tr><td>Distinction</td><td>85</td></tr>
				<tr><td>First</td><td>70</td></tr>
			</table>`,
			wantOK:    true,
			wantScale: 85,
			wantRows:  2,
		},
		{
			name: "rows above an explicit scale cue are rejected",
			html: `<table>
				<caption>GPA on a 4.0 scale</caption>
				<tr><th>Grade</th><th>Points</th></tr>
				<tr><td>A</td><td>9</td></tr>
				<tr><td>B</td><td>3</td></tr>
			</table>`,
			wantOK: false,
		},
		{
			name: "single data row is not a scale",
			html: `<table>
				<tr><th>Grade</th><th>Points</th></tr>
				<tr><td>A</td><td>4</td></tr>
			</table>`,
			wantOK: false,
		},
		{
			name: "rows without numbers are dropped",
			html: `<table>
				<tr><th>Grade</th><th>Points</th></tr>
				<tr><td>A</td><td>4</td></tr>
				<tr><td>Withdrawn</td><td>n/a</td></tr>
				<tr><td>B</td><td>3</td></tr>
				<tr><td></td><td>2</td></tr>
			</table>`,
			wantOK:    true,
			wantScale: 4,
			wantRows:  2,
		},
		{
			name: "all zero points has no scale",
			html: `<table>
				<tr><th>Grade</th><th>Points</th></tr>
				<tr><td>F</td><td>0</td></tr>
				<tr><td>Ab</td><td>0</td></tr>
			</table>`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ParseGradingTable(mustDoc(t, tt.html))

			if ok != tt.wantOK {
				t.Fatalf("ParseGradingTable() ok = %v, want %v (match %+v)", ok, tt.wantOK, m)
			}
			if !ok {
				return
			}
			if m.Scale != tt.wantScale {
				t.Errorf("Scale = %v, want %v", m.Scale, tt.wantScale)
			}
			if len(m.Grades) != tt.wantRows {
				t.Errorf("got %d grade rows, want %d: %+v", len(m.Grades), tt.wantRows, m.Grades)
			}
		})
	}
}

func TestParseGradingTable_Rows(t *testing.T) {
	m, ok := ParseGradingTable(mustDoc(t, tenPointTable))
	if !ok {
		t.Fatal("ParseGradingTable() found no table")
	}

	want := []grading.GradeRow{
		{Label: "O (Outstanding)", Points: 10, PercentageRange: "91-100"},
		{Label: "A+", Points: 9, PercentageRange: "81-90"},
		{Label: "A", Points: 8, PercentageRange: "71-80"},
		{Label: "B+", Points: 7, PercentageRange: "61-70"},
	}
	if diff := cmp.Diff(want, m.Grades); diff != "" {
		t.Errorf("grade rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGradingTable_FirstSuccessWins(t *testing.T) {
	html := `
	<table>
		<tr><th>Year</th><th>Enrolment</th></tr>
		<tr><td>2020</td><td>1200</td></tr>
		<tr><td>2021</td><td>1300</td></tr>
	</table>
	<table>
		<tr><th>Grade</th><th>Points</th></tr>
		<tr><td>S</td><td>10</td></tr>
		<tr><td>A</td><td>9</td></tr>
	</table>
	<table>
		<tr><th>Grade</th><th>Points</th></tr>
		<tr><td>A</td><td>4</td></tr>
		<tr><td>B</td><td>3</td></tr>
	</table>`

	m, ok := ParseGradingTable(mustDoc(t, html))
	if !ok {
		t.Fatal("ParseGradingTable() found no table")
	}
	if m.Grades[0].Label != "S" {
		t.Errorf("matched table starting with %q, want the first grading table", m.Grades[0].Label)
	}
	if m.Scale != 10 {
		t.Errorf("Scale = %v, want 10", m.Scale)
	}
}

func TestParseGradingTable_PointsWithinScale(t *testing.T) {
	pages := []string{
		tenPointTable,
		`<table>
			<tr><th>Grade</th><th>Points</th></tr>
			<tr><td>A</td><td>4.0</td></tr>
			<tr><td>B</td><td>3.3</td></tr>
		</table>`,
	}

	for _, html := range pages {
		m, ok := ParseGradingTable(mustDoc(t, html))
		if !ok {
			t.Fatalf("no match for fixture %q", html)
		}
		for _, g := range m.Grades {
			if g.Points < 0 || g.Points > m.Scale+Epsilon {
				t.Errorf("row %q has points %v outside [0, %v]", g.Label, g.Points, m.Scale)
			}
		}
	}
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage(strings.NewReader(`<html><body>
		<a href="/academics">Academics</a>`+tenPointTable+`</body></html>`), "https://uni.edu")
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if !page.Found || page.Match.Scale != 10 {
		t.Errorf("ParsePage() = %+v", page)
	}
	if page.Links != nil {
		t.Errorf("links collected on a matching page: %+v", page.Links)
	}

	page, err = ParsePage(strings.NewReader(`<p>no tables here <a href="/regulations">Regulations</a></p>`), "https://uni.edu")
	if err != nil {
		t.Fatalf("ParsePage() error = %v", err)
	}
	if page.Found {
		t.Error("ParsePage() matched a page without tables")
	}
	want := []Link{{URL: "https://uni.edu/regulations", Href: "/regulations", Text: "Regulations"}}
	if diff := cmp.Diff(want, page.Links); diff != "" {
		t.Errorf("ParsePage() links mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGradeRow(t *testing.T) {
	tests := []struct {
		name   string
		cells  []string
		want   grading.GradeRow
		wantOK bool
	}{
		{
			name:   "label points range",
			cells:  []string{"A+", "9", "80 - 89"},
			want:   grading.GradeRow{Label: "A+", Points: 9, PercentageRange: "80-89"},
			wantOK: true,
		},
		{
			name:   "first numeric token wins",
			cells:  []string{"B", "Good (7.5)", "6"},
			want:   grading.GradeRow{Label: "B", Points: 7.5},
			wantOK: true,
		},
		{
			name:   "en dash range is normalized",
			cells:  []string{"C", "6", "50–59"},
			want:   grading.GradeRow{Label: "C", Points: 6, PercentageRange: "50-59"},
			wantOK: true,
		},
		{
			name:   "range cell also supplies points when first",
			cells:  []string{"D", "40-49", "4"},
			want:   grading.GradeRow{Label: "D", Points: 40, PercentageRange: "40-49"},
			wantOK: true,
		},
		{
			name:   "missing label",
			cells:  []string{" ", "4"},
			wantOK: false,
		},
		{
			name:   "no numeric cell",
			cells:  []string{"Pass", "Satisfactory"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseGradeRow(tt.cells)
			if ok != tt.wantOK {
				t.Fatalf("parseGradeRow(%q) ok = %v, want %v", tt.cells, ok, tt.wantOK)
			}
			if ok && !cmp.Equal(got, tt.want) {
				t.Errorf("parseGradeRow(%q) = %+v, want %+v", tt.cells, got, tt.want)
			}
		})
	}
}
