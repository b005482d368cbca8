// Package grading defines the grading-system data model shared by the crawler.
//
// A GradingSystem maps grade labels to point values on a bounded scale. Systems are
// collected into a Catalog, which is persisted as grading-systems.json and consumed by
// the GPA calculator. Identifiers are URL-safe slugs derived from institution names,
// so the same institution discovered on two runs maps to the same catalog entry.
package grading
