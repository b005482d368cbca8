package scraper

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bashtech/gpacalc-crawler/internal/grading"
)

// CountryList is a per-country "List of universities" page found on the global index
type CountryList struct {
	URL     string
	Country string
}

// Link is an outbound anchor resolved to an absolute URL
type Link struct {
	URL  string
	Href string // href as written on the page
	Text string
}

var (
	// Names of list, ranking and regulator pages rather than institutions
	metaPagePattern = regexp.MustCompile(`(?i)list of|states and union territories|\bugc\b|\bnai\b|\bnaac\b|ranking|accreditation`)

	// Words that mark a name as an institution. Abbreviations need word boundaries so
	// "nit" does not match "community".
	institutionPattern = regexp.MustCompile(`(?i)university|institute|college|academy|\biit\b|\bnit\b|\biiit\b|\biisc\b`)

	countryListPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^List of universities.* in (.+)`),
		regexp.MustCompile(`(?i)^List of colleges.* in (.+)`),
	}
)

// ExtractEntities returns the institutions linked from a list page, deduplicated by
// lowercased name in document order. origin is prepended to the wiki hrefs, and each
// entity's Kind is the nearest h2/h3 heading above it.
func ExtractEntities(r io.Reader, origin string) ([]grading.Entity, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	origin = strings.TrimSuffix(origin, "/")
	entities := make([]grading.Entity, 0)
	seen := make(map[string]bool)

	section := ""
	doc.Find("h2, h3, li a").Each(func(i int, a *goquery.Selection) {
		if a.Is("h2, h3") {
			section = headingText(a)
			return
		}

		name := strings.TrimSpace(a.Text())
		href, _ := a.Attr("href")
		if name == "" || !isArticleLink(href) {
			return
		}

		if !LooksLikeInstitution(name) {
			return
		}

		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true

		entities = append(entities, grading.Entity{
			Name:      name,
			DetailURL: origin + href,
			Kind:      section,
		})
	})

	return entities, nil
}

// headingText drops the "[edit]" link older wiki markup nests inside headings
func headingText(h *goquery.Selection) string {
	if headline := h.Find(".mw-headline"); headline.Length() > 0 {
		return strings.TrimSpace(headline.First().Text())
	}
	h = h.Clone()
	h.Find(".mw-editsection").Remove()
	return strings.TrimSpace(h.Text())
}

// LooksLikeInstitution reports whether an anchor name reads like a university rather
// than a list or regulator page
func LooksLikeInstitution(name string) bool {
	if metaPagePattern.MatchString(name) {
		return false
	}
	return institutionPattern.MatchString(name)
}

// ExtractCountryLists returns the per-country list pages linked from the global index,
// deduplicated by (url, lowercased country).
func ExtractCountryLists(r io.Reader, origin string) ([]CountryList, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	origin = strings.TrimSuffix(origin, "/")
	lists := make([]CountryList, 0)
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(i int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		href, _ := a.Attr("href")
		if text == "" || !strings.HasPrefix(href, "/wiki/") {
			return
		}

		country := countryFromListTitle(text)
		if country == "" {
			return
		}

		list := CountryList{URL: origin + href, Country: country}
		key := list.URL + "|" + strings.ToLower(country)
		if seen[key] {
			return
		}
		seen[key] = true
		lists = append(lists, list)
	})

	return lists, nil
}

func countryFromListTitle(text string) string {
	for _, pattern := range countryListPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ExtractLinks returns every anchor on the page that resolves to an absolute http(s)
// URL. Site-relative hrefs are resolved against base; other relative forms are skipped.
func ExtractLinks(doc *goquery.Document, base string) []Link {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}

	links := make([]Link, 0)
	doc.Find("a[href]").Each(func(i int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)

		var target string
		switch {
		case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
			target = href
		case strings.HasPrefix(href, "/"):
			ref, err := url.Parse(href)
			if err != nil {
				return
			}
			target = baseURL.ResolveReference(ref).String()
		default:
			return
		}

		links = append(links, Link{URL: target, Href: href, Text: strings.TrimSpace(a.Text())})
	})

	return links
}

// isArticleLink reports whether href points at a wiki article (not an in-page anchor)
func isArticleLink(href string) bool {
	return strings.HasPrefix(href, "/wiki/")
}
