// Package palet provides the query resolution engine behind a
// command-palette style launcher. It discovers installed applications,
// persists a searchable projection of them, and resolves a typed query
// into an ordered list of actionable results.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, toml/, lipgloss/).
package palet
