package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/f1nsight/f1nsight-api/internal/api/respond"
	"github.com/f1nsight/f1nsight-api/internal/cache"
)

// GetSeasons returns all available seasons, most recent first.
// @Summary List seasons
// @Description Returns every season the upstream statistics API knows about, most recent first.
// @Tags standings
// @Produce json
// @Success 200 {array} string
// @Router /seasons [get]
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, h.stats.AvailableSeasons(r.Context()))
}

// GetDriverStandings returns the driver championship table.
// @Summary Driver standings
// @Description Returns the driver championship standings for a season (defaults to the current year). Empty when the season has no data.
// @Tags standings
// @Produce json
// @Param season query string false "Season year (defaults to current)"
// @Success 200 {array} f1.DriverStanding
// @Router /standings/drivers [get]
func (h *Handler) GetDriverStandings(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")

	cacheKey := "standings:drivers:" + season
	if h.serveCached(w, r, cacheKey, cache.TTLSeason) {
		return
	}

	standings := h.stats.DriverStandings(r.Context(), season)
	h.cacheAndWrite(w, cacheKey, standings, cache.TTLSeason)
}

// GetConstructorStandings returns the constructor championship table.
// @Summary Constructor standings
// @Description Returns the constructor championship standings for a season with team names normalized across rebrands.
// @Tags standings
// @Produce json
// @Param season query string false "Season year (defaults to current)"
// @Success 200 {array} f1.ConstructorStanding
// @Router /standings/constructors [get]
func (h *Handler) GetConstructorStandings(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")

	cacheKey := "standings:constructors:" + season
	if h.serveCached(w, r, cacheKey, cache.TTLSeason) {
		return
	}

	standings := h.stats.ConstructorStandings(r.Context(), season)
	h.cacheAndWrite(w, cacheKey, standings, cache.TTLSeason)
}

// serveCached answers from the response cache when possible, honoring
// If-None-Match. ttl is the tier the entry was stored with so replayed
// hits advertise the same Cache-Control lifetime as the original write.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, cacheKey string, ttl time.Duration) bool {
	data, etag, ok := h.cache.Get(cacheKey)
	if !ok {
		return false
	}
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return true
	}
	respond.WriteJSON(w, data, etag, ttl, true)
	return true
}

// cacheAndWrite marshals, caches, and writes a response body.
func (h *Handler) cacheAndWrite(w http.ResponseWriter, cacheKey string, v interface{}, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "MARSHAL_ERROR", "Failed to encode response")
		return
	}
	etag := h.cache.Set(cacheKey, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}
