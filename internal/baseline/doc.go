// Package baseline holds the national grading scales written in countries mode.
//
// The table is fixed and needs no network access. None of the entries belong to
// the country whose systems are validated, so they are merged as-is.
package baseline
