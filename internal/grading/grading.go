package grading

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Region used for entries discovered through the world index, where no region is known
const UnknownRegion = "Unknown"

// Entity is a named institution found on a list page
type Entity struct {
	Name      string
	DetailURL string // absolute article URL, empty if none
	Kind      string // section heading the entity was listed under, empty if none
}

// GradeRow is one grade of a grading system
type GradeRow struct {
	Label           string  `json:"grade"`
	Points          float64 `json:"points"`
	PercentageRange string  `json:"percentage,omitempty"`
	Note            string  `json:"description,omitempty"`

	// Extra holds grade fields this tool does not manage, so a rewrite keeps them
	Extra map[string]json.RawMessage `json:"-"`
}

type gradeRowFields GradeRow

var gradeRowKeys = map[string]bool{"grade": true, "points": true, "percentage": true, "description": true}

// UnmarshalJSON decodes the managed fields and keeps everything else in Extra
func (g *GradeRow) UnmarshalJSON(data []byte) error {
	var fields gradeRowFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := extraFields(data, gradeRowKeys)
	if err != nil {
		return err
	}
	*g = GradeRow(fields)
	g.Extra = extra
	return nil
}

// MarshalJSON writes the managed fields in schema order, then any extra fields
func (g GradeRow) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.field("grade", g.Label)
	w.field("points", decimal(g.Points))
	if g.PercentageRange != "" {
		w.field("percentage", g.PercentageRange)
	}
	if g.Note != "" {
		w.field("description", g.Note)
	}
	w.extra(g.Extra)
	return w.bytes()
}

// GradingSystem is a normalized grading scale for one institution or country
type GradingSystem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Country     string     `json:"country"`
	Region      string     `json:"region"`
	Description string     `json:"description"`
	Scale       float64    `json:"scale"`
	Grades      []GradeRow `json:"grades"`

	// Extra holds system fields this tool does not manage, such as "source"
	Extra map[string]json.RawMessage `json:"-"`
}

type systemFields GradingSystem

var systemKeys = map[string]bool{
	"id": true, "name": true, "country": true, "region": true,
	"description": true, "scale": true, "grades": true,
}

// UnmarshalJSON decodes the managed fields and keeps everything else in Extra
func (s *GradingSystem) UnmarshalJSON(data []byte) error {
	var fields systemFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := extraFields(data, systemKeys)
	if err != nil {
		return err
	}
	*s = GradingSystem(fields)
	s.Extra = extra
	return nil
}

// MarshalJSON writes the managed fields in schema order, then any extra fields
func (s GradingSystem) MarshalJSON() ([]byte, error) {
	grades := s.Grades
	if grades == nil {
		grades = []GradeRow{}
	}

	w := newObjectWriter()
	w.field("id", s.ID)
	w.field("name", s.Name)
	w.field("country", s.Country)
	w.field("region", s.Region)
	w.field("description", s.Description)
	w.field("scale", decimal(s.Scale))
	w.field("grades", grades)
	w.extra(s.Extra)
	return w.bytes()
}

// Clone returns a deep copy of the system
func (s GradingSystem) Clone() GradingSystem {
	if s.Grades != nil {
		grades := make([]GradeRow, len(s.Grades))
		for i, g := range s.Grades {
			g.Extra = cloneExtra(g.Extra)
			grades[i] = g
		}
		s.Grades = grades
	}
	s.Extra = cloneExtra(s.Extra)
	return s
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a name into a URL-safe identifier.
// "Anna University" becomes "anna_university".
func Slug(name string) string {
	return strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(name), "_"), "_")
}

// NewSystem creates the catalog record for an institution in a single-country crawl
func NewSystem(name, country, region string, scale float64, grades []GradeRow) GradingSystem {
	return GradingSystem{
		ID:          Slug(name),
		Name:        name,
		Country:     country,
		Region:      region,
		Description: name + " grading system",
		Scale:       scale,
		Grades:      grades,
	}
}

// NewWorldSystem creates the catalog record for an institution found through the
// world index. The country is folded into both the id and the display name since
// institution names are not unique across countries.
func NewWorldSystem(name, country string, scale float64, grades []GradeRow) GradingSystem {
	return GradingSystem{
		ID:          Slug(country + "_" + name),
		Name:        name + " (" + country + ")",
		Country:     country,
		Region:      UnknownRegion,
		Description: name + " grading system",
		Scale:       scale,
		Grades:      grades,
	}
}
