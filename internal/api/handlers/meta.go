// Package handlers contains the REST API request handlers.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
	"github.com/ramonehamilton/mtg-meta-service/internal/api/response"
	"github.com/ramonehamilton/mtg-meta-service/internal/config"
)

// MetaService is the analytics surface the handlers call.
// *analytics.Engine implements it.
type MetaService interface {
	Rankings(ctx context.Context, req analytics.RankingsRequest) (*analytics.RankingsResult, error)
	MatchupMatrix(ctx context.Context, req analytics.MatchupRequest) (*analytics.MatchupResult, error)
}

// MetaHandler handles meta analytics API requests.
type MetaHandler struct {
	service MetaService
	limits  config.AnalyticsConfig
}

// NewMetaHandler creates a new MetaHandler with the given request limits.
func NewMetaHandler(service MetaService, limits config.AnalyticsConfig) *MetaHandler {
	return &MetaHandler{service: service, limits: limits}
}

// GetArchetypeRankings returns ranked archetype meta share and win rate for
// a format, comparing the current window against the previous one.
//
// GET /api/v1/meta/archetypes?format=Standard&current_days=14&previous_days=14
//
//	&color_identity=esper&strategy=aggro&group_by=color_identity
//	&previous_start_days=40&previous_end_days=10
func (h *MetaHandler) GetArchetypeRankings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		response.BadRequest(w, fmt.Errorf("format query parameter is required"))
		return
	}

	currentDays, err := h.dayParam(q.Get("current_days"), h.limits.DefaultDays)
	if err != nil {
		response.BadRequest(w, fmt.Errorf("current_days: %w", err))
		return
	}
	previousDays, err := h.dayParam(q.Get("previous_days"), h.limits.DefaultDays)
	if err != nil {
		response.BadRequest(w, fmt.Errorf("previous_days: %w", err))
		return
	}

	req := analytics.RankingsRequest{
		Format:        format,
		CurrentDays:   currentDays,
		PreviousDays:  previousDays,
		ColorIdentity: q.Get("color_identity"),
		Strategy:      q.Get("strategy"),
		GroupBy:       analytics.GroupField(q.Get("group_by")),
	}

	// Explicit previous-window offsets override previous_days; the engine
	// rejects offsets that overlap the current window.
	if q.Get("previous_start_days") != "" || q.Get("previous_end_days") != "" {
		req.PreviousStartDaysAgo, err = h.dayParam(q.Get("previous_start_days"), 0)
		if err != nil {
			response.BadRequest(w, fmt.Errorf("previous_start_days: %w", err))
			return
		}
		req.PreviousEndDaysAgo, err = strconv.Atoi(q.Get("previous_end_days"))
		if err != nil {
			response.BadRequest(w, fmt.Errorf("previous_end_days: %w", err))
			return
		}
	}

	result, err := h.service.Rankings(r.Context(), req)
	if err != nil {
		if analytics.IsValidationError(err) {
			response.BadRequest(w, err)
			return
		}
		response.InternalError(w, err)
		return
	}

	if len(result.Rows) == 0 {
		response.NotFound(w, fmt.Errorf("no data available for format %q in the requested period", format))
		return
	}
	response.Success(w, result)
}

// GetMatchupMatrix returns head-to-head win rates between archetypes.
//
// GET /api/v1/meta/matchups?format=Standard&days=14
func (h *MetaHandler) GetMatchupMatrix(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		response.BadRequest(w, fmt.Errorf("format query parameter is required"))
		return
	}
	days, err := h.dayParam(q.Get("days"), h.limits.DefaultDays)
	if err != nil {
		response.BadRequest(w, fmt.Errorf("days: %w", err))
		return
	}

	result, err := h.service.MatchupMatrix(r.Context(), analytics.MatchupRequest{
		Format: format,
		Days:   days,
	})
	if err != nil {
		if analytics.IsValidationError(err) {
			response.BadRequest(w, err)
			return
		}
		response.InternalError(w, err)
		return
	}

	if len(result.Matrix) == 0 {
		response.NotFound(w, fmt.Errorf("no match data available for format %q in the requested period", format))
		return
	}
	response.Success(w, result)
}

// dayParam parses a day-count query value and enforces the configured upper
// bound. An empty value falls back to fallback (returned unchecked so the
// explicit-offset path can pass 0 for "unset").
func (h *MetaHandler) dayParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", value)
	}
	if days < 1 {
		return 0, fmt.Errorf("must be at least 1, got %d", days)
	}
	if h.limits.MaxDays > 0 && days > h.limits.MaxDays {
		return 0, fmt.Errorf("must be at most %d, got %d", h.limits.MaxDays, days)
	}
	return days, nil
}
