// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package models

import "time"

// Recommendation is a single movie proposed for a screening room.
// Title is the identity used for deduplication within a resolution run.
type Recommendation struct {
	Title       string
	Overview    string
	Genres      []Genre
	Language    string
	ReleaseDate *time.Time
	Website     string
	Keywords    []string
}

// WeeklyBillboard holds the recommendations for one week of the horizon.
type WeeklyBillboard struct {
	WeekNumber int
	BigRooms   []Recommendation
	SmallRooms []Recommendation
}

// PagedResult is one page of catalog results.
type PagedResult struct {
	Page         int
	TotalResults int
	TotalPages   int
	Results      []Recommendation
}

// MovieFilter narrows a catalog query. From is inclusive and To exclusive in
// the billboard's own terms; the catalog maps them onto its release date
// bounds.
type MovieFilter struct {
	From       time.Time
	To         time.Time
	Genres     []Genre
	KeywordIDs []string
}

// SuccessfulMovie is a title that sold well in a city, as reported by the
// sales repository.
type SuccessfulMovie struct {
	Title       string
	SeatsSold   int64
	ReleaseDate time.Time
	Genres      string
}
