// Package narrator turns saved news and article HTML pages into speakable
// text plus a metadata record, ready for text-to-speech narration.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, readability/).
package narrator
