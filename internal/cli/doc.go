// Package cli implements the command-line interface for gpacalc-crawler.
//
// The cli package provides the Cobra-based root command. It selects a discovery mode
// (single country, world, or national baselines), loads configuration and the existing
// catalog, runs the crawler, merges the results, and reports a run summary as text, a
// table, or JSON. Structured logs go to stderr so stdout carries only the summary.
package cli
