package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/f1nsight/f1nsight-api/internal/api/respond"
	"github.com/f1nsight/f1nsight-api/internal/cache"
)

// GetRaces returns the race calendar for a season.
// @Summary Season race calendar
// @Description Returns all races of a season in round order with circuit, locality, and country-code metadata.
// @Tags races
// @Produce json
// @Param season query string false "Season year (defaults to current)"
// @Success 200 {array} f1.Race
// @Router /races [get]
func (h *Handler) GetRaces(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")

	cacheKey := "races:" + season
	if h.serveCached(w, r, cacheKey, cache.TTLSeason) {
		return
	}

	races := h.stats.RacesBySeason(r.Context(), season)
	h.cacheAndWrite(w, cacheKey, races, cache.TTLSeason)
}

// GetRaceResults returns the full results of one race.
// @Summary Race results
// @Description Returns the classification for one round. Future rounds return the calendar entry with isFutureRace set.
// @Tags races
// @Produce json
// @Param round path string true "Round number (1-based)"
// @Param season query string false "Season year (defaults to current)"
// @Success 200 {object} f1.RaceDetail
// @Failure 404 {object} respond.ErrorResponse
// @Router /races/{round}/results [get]
func (h *Handler) GetRaceResults(w http.ResponseWriter, r *http.Request) {
	round := chi.URLParam(r, "round")
	season := r.URL.Query().Get("season")
	if season == "" {
		season = h.stats.CurrentSeason()
	}

	cacheKey := "race:" + season + ":" + round
	if h.serveCached(w, r, cacheKey, cache.TTLSeason) {
		return
	}

	detail := h.stats.RaceResults(r.Context(), season, round)
	if detail == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No race for season "+season+" round "+round)
		return
	}
	h.cacheAndWrite(w, cacheKey, detail, cache.TTLSeason)
}
