// Package readable extracts the main readable prose of an HTML document as
// an ordered sequence of styled text runs, and renders that sequence as
// Markdown, HTML or JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, htmltomarkdown/).
package readable
