// Package uwdocs turns a scraped card catalog into a static set of
// cross-linked markdown pages.
//
// This package contains domain types, interfaces and the pure functions
// shared by both pipelines (slugs and rules-text sanitizing). Implementations
// live in subdirectories named after their primary dependency (e.g., rod/,
// goquery/, sqlite/).
package uwdocs
