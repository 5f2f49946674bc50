// Package mdclip provides article extraction and Markdown conversion for
// web pages. Given a parsed page it locates the node most likely to hold
// the primary article, falls back to a sanitized copy of the whole body
// when no candidate qualifies, and transduces the chosen subtree into a
// Markdown document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, trafilatura/).
// The engine itself lives in extract/ and depends only on this package.
package mdclip
