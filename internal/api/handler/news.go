package handler

import (
	"net/http"
	"strconv"

	"github.com/f1nsight/f1nsight-api/internal/api/respond"
)

// GetNews returns a filtered page of F1 news articles.
// @Summary F1 news
// @Description Returns F1 articles from trusted domains after keyword-exclusion and near-duplicate filtering. 503 when the news service is not configured.
// @Tags news
// @Produce json
// @Param sources query string false "Comma-separated source IDs (see /news/sources)"
// @Param page_size query int false "Articles per page (1-50, default 30)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} external.NewsResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /news [get]
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	if h.news == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "NEWS_UNAVAILABLE", "News service is not configured")
		return
	}

	sources := r.URL.Query().Get("sources")

	pageSize := 0
	if ps := r.URL.Query().Get("page_size"); ps != "" {
		pageSize, _ = strconv.Atoi(ps)
	}
	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n >= 1 {
			page = n
		}
	}

	respond.WriteJSONObject(w, http.StatusOK, h.news.GetNews(r.Context(), sources, pageSize, page))
}

// GetNewsSources returns the fixed trusted source list.
// @Summary News sources
// @Description Lists the trusted F1 news sources callers can filter by.
// @Tags news
// @Produce json
// @Success 200 {array} external.Source
// @Failure 503 {object} respond.ErrorResponse
// @Router /news/sources [get]
func (h *Handler) GetNewsSources(w http.ResponseWriter, r *http.Request) {
	if h.news == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "NEWS_UNAVAILABLE", "News service is not configured")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, h.news.Sources())
}

// GetNewsStatus returns news service configuration status.
// @Summary News service status
// @Description Reports whether the news subsystem is configured and which provider backs it.
// @Tags news
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /news/status [get]
func (h *Handler) GetNewsStatus(w http.ResponseWriter, r *http.Request) {
	if h.news == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"configured": false,
			"provider":   nil,
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, h.news.Status())
}
