// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package tmdb

import "time"

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// KeywordsResponse is returned by /movie/{id}/keywords and embedded in movie
// details when keywords are appended.
type KeywordsResponse struct {
	ID       int       `json:"id"`
	Keywords []Keyword `json:"keywords"`
}

// Movie is a discover or search result, or a movie detail. Detail-only fields
// are empty in list results.
type Movie struct {
	ID               int               `json:"id"`
	Title            string            `json:"title"`
	OriginalTitle    string            `json:"original_title"`
	OriginalLanguage string            `json:"original_language"`
	Overview         string            `json:"overview"`
	ReleaseDate      string            `json:"release_date"`
	GenreIDs         []int             `json:"genre_ids,omitempty"`
	Genres           []Genre           `json:"genres,omitempty"`
	Homepage         string            `json:"homepage,omitempty"`
	Keywords         *KeywordsResponse `json:"keywords,omitempty"`
}

// MovieList is the paged envelope of discover and search responses.
type MovieList struct {
	Page         int     `json:"page"`
	TotalResults int     `json:"total_results"`
	TotalPages   int     `json:"total_pages"`
	Results      []Movie `json:"results"`
}

// DiscoverParams narrows /discover/movie. Zero times and empty slices are
// left out of the query.
type DiscoverParams struct {
	ReleasedFrom time.Time
	ReleasedTo   time.Time
	GenreIDs     []int
	KeywordIDs   []string
	Page         int
}
