// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the movie catalog:
//  1. [MovieListView] : Browse and filter the movie catalog
//  2. [MovieDetailView] : Inspect a movie together with its reviews
//  3. [DashboardView] : Display rated movies and personalized recommendations
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Multi-request operations run through the tasks engine, with progress updates
// flowing through a channel for non-blocking status reporting.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
