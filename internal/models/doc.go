// Package models defines the domain types produced and consumed by the playlist resolver.
//
// The package contains two categories of types:
//
// 1. References: a closed variant describing which upstream API a playlist URL targets
//   - [LegacyRef] : owner handle plus numeric kind, served by the legacy handler endpoint
//   - [ModernRef] : a single UUID-like playlist identifier, served by the modern API
//
// 2. Results: the normalized, client-facing payload
//   - [PlaylistResult] : title, owner and ordered tracks
//   - [Track] : title, authors, cover art and embeddable player markup
//
// Results are built once by the normalizer and never mutated afterwards.
package models
