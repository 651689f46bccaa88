// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package billboard

import "sync"

// AssignedTitles is the set of titles already placed on a billboard during
// one resolution. It is safe for concurrent use.
type AssignedTitles struct {
	mu     sync.Mutex
	titles map[string]struct{}
}

// NewAssignedTitles creates an empty set.
func NewAssignedTitles() *AssignedTitles {
	return &AssignedTitles{titles: make(map[string]struct{})}
}

// TryClaim adds title to the set and reports whether it was absent.
func (a *AssignedTitles) TryClaim(title string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, taken := a.titles[title]; taken {
		return false
	}
	a.titles[title] = struct{}{}
	return true
}

// Len returns the number of claimed titles.
func (a *AssignedTitles) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.titles)
}
