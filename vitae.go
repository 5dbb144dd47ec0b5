// Package vitae provides a local, CLI-based resume parser. It converts
// resume documents to text, locates the work-history section and turns it
// into structured job entries, and stores parsed resumes for later review.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, etree/).
package vitae
