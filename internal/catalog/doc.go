// Package catalog persists the grading-systems catalog and merges crawl results into it.
//
// The catalog is a single JSON document (grading-systems.json) that must already exist.
// Load fails on a missing or malformed file. Save rewrites the document with two-space
// indentation and a trailing newline through a temporary file and rename, so readers
// never observe a half-written catalog.
//
// Merge upserts new systems by id, drops constrained-country entries that fail
// validation (both new and previously stored), bumps the last version segment, and
// stamps lastUpdated with the run date.
package catalog
