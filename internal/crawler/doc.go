// Package crawler finds grading tables on institution websites.
//
// An Explorer walks one site breadth-first from its homepage, following links whose
// text or href mentions an academic keyword, until a grading table matches or the page
// budget runs out. A Runner fans explorations out over every institution on a list page
// (CrawlCountry) or over every country list linked from a global index (CrawlWorld),
// bounding the number of explorations in flight.
//
// Unreachable pages and pages without a usable table are treated as absent; neither
// the Explorer nor the Runner returns errors.
package crawler
