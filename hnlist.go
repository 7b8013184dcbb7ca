// Package hnlist extracts story listings from saved Hacker News front pages
// and post-processes them: merging several captures, filtering stories by
// topic, and publishing the matches as JSON, RSS, or a README table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, gemini/).
package hnlist
