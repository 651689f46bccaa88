// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/billboard/internal/billboard"
	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/validation"
)

// dateLayout is the format of the from parameter.
const dateLayout = "2006-01-02"

// billboardQuery is the parsed query string of the billboard endpoint.
type billboardQuery struct {
	From       *time.Time `query:"from" validate:"required"`
	Weeks      *int       `query:"weeks" validate:"required,min=0"`
	BigRooms   *int       `query:"bigrooms" validate:"required,min=0"`
	SmallRooms *int       `query:"smallrooms" validate:"required,min=0"`
	City       string     `query:"city" validate:"omitempty,cityname"`
}

func (q *billboardQuery) params() billboard.IntelligentBillboardParams {
	return billboard.IntelligentBillboardParams{
		From:       q.From,
		Weeks:      q.Weeks,
		BigRooms:   q.BigRooms,
		SmallRooms: q.SmallRooms,
		City:       q.City,
	}
}

// String renders the query for error messages.
func (q *billboardQuery) String() string {
	return fmt.Sprintf("from=%s, weeks=%s, bigrooms=%s, smallrooms=%s, city=%q",
		formatDate(q.From), formatInt(q.Weeks), formatInt(q.BigRooms), formatInt(q.SmallRooms), q.City)
}

// IntelligentBillboard handles GET /api/v1/billboard/intelligent.
//
// Query parameters: from (YYYY-MM-DD), weeks, bigrooms, smallrooms are
// required; city is optional and narrows the catalog to what sold well there.
func (h *Handler) IntelligentBillboard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	query, verr := parseBillboardQuery(r.URL.Query())
	if verr == nil {
		verr = validation.ValidateStruct(query)
	}
	if verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	logging.Ctx(ctx).Info().
		Str("from", formatDate(query.From)).
		Int("weeks", *query.Weeks).
		Int("big_rooms", *query.BigRooms).
		Int("small_rooms", *query.SmallRooms).
		Str("city", query.City).
		Msg("Resolving intelligent billboard")

	resp, err := h.service.IntelligentBillboard(ctx, query.params())
	switch {
	case err == nil:
		rw.Success(resp)
	case errors.Is(err, billboard.ErrMissingParameter), errors.Is(err, billboard.ErrInvalidParameter):
		rw.ValidationError(err.Error(), nil)
	default:
		rw.InternalError(fmt.Sprintf("Error resolving intelligent billboard (%s)", query), err)
	}
}

// parseBillboardQuery converts the raw values. Absent parameters stay nil
// for the validator; present but malformed ones fail here.
func parseBillboardQuery(values url.Values) (*billboardQuery, *validation.RequestValidationError) {
	q := &billboardQuery{City: strings.TrimSpace(values.Get("city"))}

	if raw := values.Get("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, validation.NewRequestValidationError("from", "date", raw,
				"from must be a date in YYYY-MM-DD format")
		}
		q.From = &from
	}

	ints := []struct {
		name string
		dst  **int
	}{
		{"weeks", &q.Weeks},
		{"bigrooms", &q.BigRooms},
		{"smallrooms", &q.SmallRooms},
	}
	for _, p := range ints {
		raw := values.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, validation.NewRequestValidationError(p.name, "integer", raw,
				fmt.Sprintf("%s must be an integer", p.name))
		}
		*p.dst = &n
	}

	return q, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "<nil>"
	}
	return t.Format(dateLayout)
}

func formatInt(n *int) string {
	if n == nil {
		return "<nil>"
	}
	return strconv.Itoa(*n)
}
