// Package clipper extracts the readable article body from a web page.
// Given a document tree supplied by a host (a browser tab, a saved file),
// it locates the subtree holding the main content, strips page chrome,
// normalizes the text, and returns a structured result with metadata,
// images, links, word count, reading time and excerpt.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/, gemini/).
// The dependency-free extraction engine lives in extract/.
package clipper
