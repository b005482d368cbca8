package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bashtech/gpacalc-crawler/internal/grading"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `{
  "version": "1.0.3",
  "lastUpdated": "2025-01-15",
  "maintainer": "gpacalc",
  "systems": [
    {
      "id": "portugal_20",
      "name": "Portugal (0-20)",
      "country": "Portugal",
      "region": "Europe",
      "description": "Portuguese 0-20 scale",
      "scale": 20,
      "grades": [
        {"grade": "18-20", "points": 20, "description": "Excelente"},
        {"grade": "10-13", "points": 12}
      ]
    }
  ]
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "grading-systems.json", sampleCatalog)

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "1.0.3", cat.Version)
	require.Equal(t, "2025-01-15", cat.LastUpdated)
	require.Len(t, cat.Systems, 1)

	sys := cat.Systems[0]
	require.Equal(t, "portugal_20", sys.ID)
	require.Equal(t, 20.0, sys.Scale)
	require.Equal(t, "Excelente", sys.Grades[0].Note)
	require.Empty(t, sys.Grades[1].PercentageRange)
	require.Contains(t, cat.Extra, "maintainer")
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "catalog not found at "+path)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "grading-systems.json", `{"version": "1.0.0", "systems": [`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing catalog")
}

func TestLoad_MissingSystemsIsEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "grading-systems.json", `{"version": "1.0.0"}`)

	cat, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cat.Systems)
	require.Empty(t, cat.Systems)
}

func TestEncode(t *testing.T) {
	cat := grading.NewCatalog("1.0.4")
	cat.LastUpdated = "2026-10-19"
	cat.Systems = append(cat.Systems, grading.NewSystem("Anna University", "India", "South Asia", 10, []grading.GradeRow{
		{Label: "O", Points: 10, PercentageRange: "91-100"},
		{Label: "A+", Points: 9},
	}))

	data, err := Encode(cat)
	require.NoError(t, err)

	out := string(data)
	require.True(t, strings.HasPrefix(out, "{\n  \"version\": \"1.0.4\",\n  \"lastUpdated\": \"2026-10-19\",\n  \"systems\": ["), out)
	require.True(t, strings.HasSuffix(out, "}\n"))
	require.Contains(t, out, `"grade": "O"`)
	require.Contains(t, out, `"percentage": "91-100"`)
	require.NotContains(t, out, `"description": ""`)
	require.Contains(t, out, `"scale": 10.0,`)
	require.Contains(t, out, `"points": 9.0`)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "grading-systems.json", sampleCatalog)

	cat, err := Load(path)
	require.NoError(t, err)

	merged, _ := NewMerger("India").Merge(cat, []grading.GradingSystem{
		grading.NewSystem("Anna University", "India", "South Asia", 10, []grading.GradeRow{
			{Label: "O", Points: 10}, {Label: "A+", Points: 9}, {Label: "A", Points: 8},
		}),
	})
	require.NoError(t, Save(path, merged))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "1.0.4", reloaded.Version)
	require.Len(t, reloaded.Systems, 2)
	require.Equal(t, merged.Systems, reloaded.Systems)
	require.JSONEq(t, `"gpacalc"`, string(reloaded.Extra["maintainer"]))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file should not be left behind")
}

func TestSave_KeepsUnmanagedFields(t *testing.T) {
	path := writeFile(t, t.TempDir(), "grading-systems.json", `{
  "version": "1.0.0",
  "lastUpdated": "2025-01-01",
  "systems": [
    {
      "id": "us_4",
      "name": "United States (4.0)",
      "country": "United States",
      "region": "North America",
      "description": "US 4.0 scale",
      "scale": 4.0,
      "source": "manual",
      "grades": [
        {"grade": "A", "points": 4.0, "minPercentage": 93},
        {"grade": "B", "points": 3.0, "minPercentage": 83}
      ]
    }
  ]
}
`)

	cat, err := Load(path)
	require.NoError(t, err)

	merged, _ := NewMerger("India").Merge(cat, nil)
	require.NoError(t, Save(path, merged))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, `"source": "manual"`)
	require.Contains(t, out, `"minPercentage": 93`)
	require.Contains(t, out, `"minPercentage": 83`)
	require.Contains(t, out, `"scale": 4.0,`)
	require.Contains(t, out, `"points": 3.0,`)

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, merged.Systems, reloaded.Systems)
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "grading-systems.json")
	require.Error(t, Save(path, grading.NewCatalog("1.0.0")))
}
