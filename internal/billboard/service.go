// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package billboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/billboard/internal/models"
)

// DefaultMaxWeeks bounds the horizon when the service is built without one.
const DefaultMaxWeeks = 52

var (
	// ErrMissingParameter is returned when a required parameter is nil.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidParameter is returned when a parameter is out of range.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// MissingParameterError names the parameter that was not supplied.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingParameter, e.Name)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}

// BillboardResolver is the resolution surface the service depends on.
type BillboardResolver interface {
	Resolve(ctx context.Context, from time.Time, weeks, bigRooms, smallRooms int, city string) []models.WeeklyBillboard
}

// IntelligentBillboardParams are the caller's inputs. Every pointer field is
// required; City is optional.
type IntelligentBillboardParams struct {
	From       *time.Time
	Weeks      *int
	BigRooms   *int
	SmallRooms *int
	City       string
}

// IntelligentBillboardResponse is the API representation of a billboard.
type IntelligentBillboardResponse struct {
	IntelligentBillboard []WeeklyBillboardResponse `json:"intelligent_billboard"`
}

type WeeklyBillboardResponse struct {
	WeekNumber int                      `json:"week_number"`
	BigRooms   []RecommendationResponse `json:"big_rooms"`
	SmallRooms []RecommendationResponse `json:"small_rooms"`
}

type RecommendationResponse struct {
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	Genre       []string `json:"genre"`
	Language    string   `json:"language"`
	ReleaseDate *string  `json:"release_date"`
	Website     string   `json:"website"`
	Keywords    []string `json:"keywords"`
}

// Service validates billboard requests and maps the resolver output to the
// response model.
type Service struct {
	resolver BillboardResolver
	maxWeeks int
}

// NewService creates a Service. maxWeeks <= 0 uses DefaultMaxWeeks.
func NewService(resolver BillboardResolver, maxWeeks int) *Service {
	if maxWeeks <= 0 {
		maxWeeks = DefaultMaxWeeks
	}
	return &Service{resolver: resolver, maxWeeks: maxWeeks}
}

// IntelligentBillboard validates params and resolves the billboard.
func (s *Service) IntelligentBillboard(ctx context.Context, params IntelligentBillboardParams) (*IntelligentBillboardResponse, error) {
	if err := s.validate(params); err != nil {
		return nil, err
	}

	weeks := s.resolver.Resolve(ctx, *params.From, *params.Weeks, *params.BigRooms, *params.SmallRooms, params.City)
	return newIntelligentBillboardResponse(weeks), nil
}

func (s *Service) validate(params IntelligentBillboardParams) error {
	switch {
	case params.From == nil:
		return &MissingParameterError{Name: "from"}
	case params.Weeks == nil:
		return &MissingParameterError{Name: "weeks"}
	case params.BigRooms == nil:
		return &MissingParameterError{Name: "bigrooms"}
	case params.SmallRooms == nil:
		return &MissingParameterError{Name: "smallrooms"}
	}

	if *params.Weeks < 0 || *params.Weeks > s.maxWeeks {
		return fmt.Errorf("%w: weeks must be between 0 and %d, got %d", ErrInvalidParameter, s.maxWeeks, *params.Weeks)
	}
	if *params.BigRooms < 0 {
		return fmt.Errorf("%w: bigrooms must not be negative, got %d", ErrInvalidParameter, *params.BigRooms)
	}
	if *params.SmallRooms < 0 {
		return fmt.Errorf("%w: smallrooms must not be negative, got %d", ErrInvalidParameter, *params.SmallRooms)
	}
	return nil
}

func newIntelligentBillboardResponse(weeks []models.WeeklyBillboard) *IntelligentBillboardResponse {
	resp := &IntelligentBillboardResponse{
		IntelligentBillboard: make([]WeeklyBillboardResponse, 0, len(weeks)),
	}
	for i := range weeks {
		resp.IntelligentBillboard = append(resp.IntelligentBillboard, WeeklyBillboardResponse{
			WeekNumber: weeks[i].WeekNumber,
			BigRooms:   toRecommendationResponses(weeks[i].BigRooms),
			SmallRooms: toRecommendationResponses(weeks[i].SmallRooms),
		})
	}
	return resp
}

func toRecommendationResponses(recs []models.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for i := range recs {
		rec := &recs[i]

		genres := make([]string, 0, len(rec.Genres))
		for _, g := range rec.Genres {
			genres = append(genres, g.String())
		}

		var releaseDate *string
		if rec.ReleaseDate != nil {
			d := rec.ReleaseDate.Format(time.DateOnly)
			releaseDate = &d
		}

		keywords := rec.Keywords
		if keywords == nil {
			keywords = []string{}
		}

		out = append(out, RecommendationResponse{
			Title:       rec.Title,
			Overview:    rec.Overview,
			Genre:       genres,
			Language:    rec.Language,
			ReleaseDate: releaseDate,
			Website:     rec.Website,
			Keywords:    keywords,
		})
	}
	return out
}
