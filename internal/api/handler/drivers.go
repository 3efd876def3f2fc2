package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/f1nsight/f1nsight-api/internal/api/respond"
	"github.com/f1nsight/f1nsight-api/internal/cache"
)

// SearchDrivers filters a season's driver roster.
// @Summary Search drivers
// @Description Case-insensitive substring search over given, family, and full names. Empty query returns the whole roster with standings attached.
// @Tags drivers
// @Produce json
// @Param season query string false "Season year (defaults to current)"
// @Param q query string false "Search query"
// @Success 200 {array} f1.Driver
// @Router /drivers/search [get]
func (h *Handler) SearchDrivers(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	query := r.URL.Query().Get("q")

	cacheKey := "drivers:search:" + season + ":" + query
	if h.serveCached(w, r, cacheKey, cache.TTLSeason) {
		return
	}

	drivers := h.stats.SearchDrivers(r.Context(), season, query)
	h.cacheAndWrite(w, cacheKey, drivers, cache.TTLSeason)
}

// GetDriverProfile returns one driver's full profile.
// @Summary Driver profile
// @Description Returns a driver profile with optional season standing, standings neighbours, and career totals.
// @Tags drivers
// @Produce json
// @Param driverID path string true "Upstream driver identifier"
// @Param season query string false "Attach this season's standing"
// @Param career query bool false "Load career statistics (default true)"
// @Success 200 {object} f1.Profile
// @Failure 404 {object} respond.ErrorResponse
// @Router /drivers/{driverID} [get]
func (h *Handler) GetDriverProfile(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")
	season := r.URL.Query().Get("season")

	loadCareer := true
	if c := r.URL.Query().Get("career"); c != "" {
		if b, err := strconv.ParseBool(c); err == nil {
			loadCareer = b
		}
	}

	cacheKey := "driver:" + driverID + ":" + season + ":" + strconv.FormatBool(loadCareer)
	if h.serveCached(w, r, cacheKey, cache.TTLDriver) {
		return
	}

	profile := h.stats.DriverProfile(r.Context(), driverID, season, loadCareer)
	if profile == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Unknown driver "+driverID)
		return
	}
	h.cacheAndWrite(w, cacheKey, profile, cache.TTLDriver)
}

// GetDriverResults returns one driver's race results for a season.
// @Summary Driver season results
// @Description Returns a driver's flattened race results for a season in calendar order.
// @Tags drivers
// @Produce json
// @Param driverID path string true "Upstream driver identifier"
// @Param season query string false "Season year (defaults to current)"
// @Success 200 {array} f1.DriverRaceResult
// @Router /drivers/{driverID}/results [get]
func (h *Handler) GetDriverResults(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")
	season := r.URL.Query().Get("season")
	if season == "" {
		season = h.stats.CurrentSeason()
	}

	cacheKey := "driver:results:" + driverID + ":" + season
	if h.serveCached(w, r, cacheKey, cache.TTLSeason) {
		return
	}

	results := h.stats.DriverResults(r.Context(), driverID, season)
	h.cacheAndWrite(w, cacheKey, results, cache.TTLSeason)
}

// GetCareerStats returns one driver's career aggregate.
// @Summary Driver career statistics
// @Description Returns total races, wins, podiums, best finish, and first/last season for a driver's whole career.
// @Tags drivers
// @Produce json
// @Param driverID path string true "Upstream driver identifier"
// @Success 200 {object} f1.CareerStats
// @Failure 404 {object} respond.ErrorResponse
// @Router /drivers/{driverID}/career [get]
func (h *Handler) GetCareerStats(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "driverID")

	stats := h.stats.CareerStats(r.Context(), driverID)
	if stats == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No career data for driver "+driverID)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, stats)
}

// CompareDrivers aligns two drivers' cumulative points for one season.
// @Summary Compare two drivers
// @Description Returns both drivers' cumulative points per completed race on a shared race axis; the shorter series is right-padded with its last value.
// @Tags drivers
// @Produce json
// @Param driverA query string true "First driver full name"
// @Param driverB query string true "Second driver full name"
// @Param season query string false "Season year (defaults to current)"
// @Success 200 {object} f1.Comparison
// @Failure 400 {object} respond.ErrorResponse
// @Router /drivers/compare [get]
func (h *Handler) CompareDrivers(w http.ResponseWriter, r *http.Request) {
	driverA := r.URL.Query().Get("driverA")
	driverB := r.URL.Query().Get("driverB")
	season := r.URL.Query().Get("season")

	if driverA == "" || driverB == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_DRIVER", "driverA and driverB query parameters are required")
		return
	}

	cacheKey := "compare:" + season + ":" + driverA + ":" + driverB
	if h.serveCached(w, r, cacheKey, cache.TTLSeason) {
		return
	}

	comparison := h.stats.CompareDrivers(r.Context(), season, driverA, driverB)
	h.cacheAndWrite(w, cacheKey, comparison, cache.TTLSeason)
}
