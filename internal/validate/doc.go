// Package validate decides whether a scraped grading system is plausible enough to keep.
//
// Checks apply to systems from the constrained country only (India by default): the
// scale must be one of the admissible national scales, there must be at least three
// grades, every label must look like a grade, points must fall within the scale, and
// labels must be unique. Systems from other countries are not checked.
package validate
