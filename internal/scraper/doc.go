// Package scraper interprets wiki and university HTML for grading data.
//
// It has two halves. The link extractor turns a "List of universities in X" page into
// institution entities, and the global index page into per-country list pages, using
// lexical heuristics that favour precision over recall. The table interpreter scans a
// page's tables for a grading scale, turning matched rows into grade rows and inferring
// the point scale from cues in the table text.
//
// All parsing is done with goquery. Nothing here touches the network.
package scraper
