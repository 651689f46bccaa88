// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/billboard/internal/cache"
	"github.com/tomtom215/billboard/internal/models"
)

func TestCatalog_FetchMoviesPage(t *testing.T) {
	api := &mockAPI{
		discoverFn: func(DiscoverParams) (*MovieList, error) {
			return &MovieList{
				Page:         1,
				TotalResults: 2,
				TotalPages:   1,
				Results: []Movie{
					{ID: 10, Title: "Past Lives", Overview: "Childhood friends", OriginalLanguage: "ko", ReleaseDate: "2023-06-02"},
					{ID: 20, Title: "No Date", ReleaseDate: "soon"},
				},
			}, nil
		},
		detailsFn: func(id int) (*Movie, error) {
			if id == 20 {
				return nil, errors.New("detail timeout")
			}
			return &Movie{
				ID:       id,
				Homepage: "https://pastlives.example",
				Genres:   []Genre{{ID: 18, Name: "Drama"}, {ID: 10749, Name: "Romance"}, {ID: 4242, Name: "Unknown"}},
				Keywords: &KeywordsResponse{Keywords: []Keyword{{ID: 1, Name: "new york"}, {ID: 2, Name: "reunion"}}},
			}, nil
		},
	}
	catalog := NewCatalog(api, nil, zerolog.Nop())

	filter := models.MovieFilter{
		From:       time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC),
		Genres:     []models.Genre{models.GenreDrama, models.GenreRomance},
		KeywordIDs: []string{"818"},
	}
	page, err := catalog.FetchMoviesPage(context.Background(), filter, 1)
	if err != nil {
		t.Fatalf("FetchMoviesPage() error: %v", err)
	}

	params := api.lastParams
	if len(params.GenreIDs) != 2 || params.GenreIDs[0] != 18 || params.GenreIDs[1] != 10749 {
		t.Errorf("genre ids = %v, want [18 10749]", params.GenreIDs)
	}
	if !params.ReleasedFrom.Equal(filter.From) || !params.ReleasedTo.Equal(filter.To) || params.Page != 1 {
		t.Errorf("discover params = %+v", params)
	}
	if len(params.KeywordIDs) != 1 || params.KeywordIDs[0] != "818" {
		t.Errorf("keyword ids = %v", params.KeywordIDs)
	}
	if n := api.detailsCalls.Load(); n != 2 {
		t.Errorf("detail calls = %d, want 2", n)
	}

	if page.Page != 1 || page.TotalResults != 2 || page.TotalPages != 1 || len(page.Results) != 2 {
		t.Fatalf("page = %+v", page)
	}

	rec := page.Results[0]
	if rec.Title != "Past Lives" || rec.Overview != "Childhood friends" || rec.Language != "ko" {
		t.Errorf("recommendation = %+v", rec)
	}
	if rec.Website != "https://pastlives.example" {
		t.Errorf("website = %q", rec.Website)
	}
	wantGenres := []models.Genre{models.GenreDrama, models.GenreRomance, models.GenreUndefined}
	if len(rec.Genres) != 3 || rec.Genres[0] != wantGenres[0] || rec.Genres[1] != wantGenres[1] || rec.Genres[2] != wantGenres[2] {
		t.Errorf("genres = %v, want %v", rec.Genres, wantGenres)
	}
	if len(rec.Keywords) != 2 || rec.Keywords[0] != "new york" {
		t.Errorf("keywords = %v", rec.Keywords)
	}
	if rec.ReleaseDate == nil || rec.ReleaseDate.Format(dateLayout) != "2023-06-02" {
		t.Errorf("release date = %v", rec.ReleaseDate)
	}

	fallback := page.Results[1]
	if fallback.Title != "No Date" || fallback.ReleaseDate != nil {
		t.Errorf("fallback = %+v, want title kept and nil release date", fallback)
	}
	if fallback.Website != "" || len(fallback.Genres) != 0 || fallback.Keywords == nil || len(fallback.Keywords) != 0 {
		t.Errorf("fallback enrichment = %+v, want empty website, genres and keywords", fallback)
	}
}

func TestCatalog_FetchMoviesPageDiscoverFailure(t *testing.T) {
	api := &mockAPI{
		discoverFn: func(DiscoverParams) (*MovieList, error) { return nil, errors.New("503") },
	}
	catalog := NewCatalog(api, nil, zerolog.Nop())

	page, err := catalog.FetchMoviesPage(context.Background(), models.MovieFilter{}, 4)
	if err == nil || page != nil {
		t.Errorf("FetchMoviesPage = %v, %v; want nil page and error", page, err)
	}
}

func TestCatalog_FetchKeywordIDs(t *testing.T) {
	api := &mockAPI{
		searchFn: func(query string, year int) (*MovieList, error) {
			if query != "Arrival" || year != 2016 {
				t.Errorf("search(%q, %d)", query, year)
			}
			return &MovieList{Results: []Movie{{ID: 329865}, {ID: 99}}}, nil
		},
		keywordsFn: func(id int) (*KeywordsResponse, error) {
			if id != 329865 {
				t.Errorf("keywords requested for %d, want first search result", id)
			}
			return &KeywordsResponse{Keywords: []Keyword{{ID: 4565, Name: "dystopia"}, {ID: 9882, Name: "space"}}}, nil
		},
	}
	kc := cache.NewMemoryKeywordCache(10, time.Hour)
	catalog := NewCatalog(api, kc, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ids, err := catalog.FetchKeywordIDs(ctx, "Arrival", 2016)
		if err != nil {
			t.Fatalf("FetchKeywordIDs() error: %v", err)
		}
		if len(ids) != 2 || ids[0] != "4565" || ids[1] != "9882" {
			t.Errorf("ids = %v, want [4565 9882]", ids)
		}
	}
	if n := api.searchCalls.Load(); n != 1 {
		t.Errorf("search calls = %d, want 1 (later lookups served from cache)", n)
	}
}

func TestCatalog_FetchKeywordIDsNoMatch(t *testing.T) {
	tests := []struct {
		name    string
		results []Movie
	}{
		{"no results", nil},
		{"non-positive id", []Movie{{ID: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockAPI{
				searchFn:   func(string, int) (*MovieList, error) { return &MovieList{Results: tt.results}, nil },
				keywordsFn: func(int) (*KeywordsResponse, error) { return nil, errors.New("should not be called") },
			}
			ids, err := NewCatalog(api, nil, zerolog.Nop()).FetchKeywordIDs(context.Background(), "Obscure", 1999)
			if err != nil || ids == nil || len(ids) != 0 {
				t.Errorf("FetchKeywordIDs = %v, %v; want empty slice", ids, err)
			}
			if n := api.keywordsCalls.Load(); n != 0 {
				t.Errorf("keyword calls = %d, want 0", n)
			}
		})
	}
}

func TestCatalog_FetchKeywordIDsSkipsInvalidInput(t *testing.T) {
	api := &mockAPI{}
	catalog := NewCatalog(api, nil, zerolog.Nop())

	for _, tc := range []struct {
		title string
		year  int
	}{{"", 2020}, {"  ", 2020}, {"Up", 0}} {
		ids, err := catalog.FetchKeywordIDs(context.Background(), tc.title, tc.year)
		if err != nil || len(ids) != 0 {
			t.Errorf("FetchKeywordIDs(%q, %d) = %v, %v", tc.title, tc.year, ids, err)
		}
	}
	if n := api.searchCalls.Load(); n != 0 {
		t.Errorf("search calls = %d, want 0", n)
	}
}

func TestCatalog_FetchKeywordIDsErrorsAreNotCached(t *testing.T) {
	fail := true
	api := &mockAPI{
		searchFn: func(string, int) (*MovieList, error) { return &MovieList{Results: []Movie{{ID: 5}}}, nil },
		keywordsFn: func(int) (*KeywordsResponse, error) {
			if fail {
				return nil, errors.New("timeout")
			}
			return &KeywordsResponse{Keywords: []Keyword{{ID: 7}}}, nil
		},
	}
	kc := cache.NewMemoryKeywordCache(10, time.Hour)
	catalog := NewCatalog(api, kc, zerolog.Nop())
	ctx := context.Background()

	if _, err := catalog.FetchKeywordIDs(ctx, "Heat", 1995); err == nil {
		t.Fatal("expected error")
	}
	fail = false
	ids, err := catalog.FetchKeywordIDs(ctx, "Heat", 1995)
	if err != nil || len(ids) != 1 || ids[0] != "7" {
		t.Errorf("FetchKeywordIDs after recovery = %v, %v; want [7]", ids, err)
	}
}

// TestCatalog_EndToEnd drives the whole stack against an httptest server.
func TestCatalog_EndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/discover/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("with_genres") != "28|35" {
			t.Errorf("with_genres = %q", r.URL.Query().Get("with_genres"))
		}
		w.Write([]byte(`{"page":1,"total_results":1,"total_pages":1,"results":[{"id":11,"title":"Hot Fuzz","original_language":"en","release_date":"2007-02-14"}]}`))
	})
	mux.HandleFunc("/movie/11", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":11,"homepage":"","genres":[{"id":28,"name":"Action"},{"id":35,"name":"Comedy"}],"keywords":{"keywords":[{"id":5,"name":"village"}]}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	catalog := NewCatalog(NewCircuitBreakerClient(newTestClient(t, server.URL, 0)), nil, zerolog.Nop())
	page, err := catalog.FetchMoviesPage(context.Background(), models.MovieFilter{
		Genres: []models.Genre{models.GenreAction, models.GenreComedy},
	}, 1)
	if err != nil {
		t.Fatalf("FetchMoviesPage() error: %v", err)
	}
	if len(page.Results) != 1 {
		t.Fatalf("results = %+v", page.Results)
	}
	rec := page.Results[0]
	if rec.Title != "Hot Fuzz" || len(rec.Genres) != 2 || rec.Genres[1] != models.GenreComedy || rec.Keywords[0] != "village" {
		t.Errorf("recommendation = %+v", rec)
	}
}
