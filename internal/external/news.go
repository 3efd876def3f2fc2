// Package external provides clients for third-party APIs (news).
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/f1nsight/f1nsight-api/internal/cache"
)

const (
	newsDefaultPageSize = 30
	newsMaxPageSize     = 50
	newsTimeout         = 15 * time.Second
	newsLookbackDays    = 30

	// Over-fetch factor: headroom for the filtering pipeline.
	newsFetchMultiplier = 2

	// Jaccard similarity above this drops an article as a near-duplicate.
	newsDedupThreshold = 0.7

	// Signature word budgets; only words longer than this many runes count.
	newsTitleWords       = 5
	newsDescriptionWords = 10
	newsMinWordLen       = 3
)

// Trusted F1 news domains, keyed by short source ID.
var sourceDomains = map[string]string{
	"formula1":   "formula1.com",
	"motorsport": "motorsport.com",
	"racefans":   "racefans.net",
	"crash":      "crash.net",
	"therace":    "the-race.com",
	"gpfans":     "gpfans.com",
}

// allDomains is the full allow-list in stable order.
var allDomains = []string{
	"formula1.com", "motorsport.com", "racefans.net",
	"crash.net", "the-race.com", "gpfans.com",
}

// excludedKeywords drops articles about other sports that slip through
// the domain filter (cross-sport sites publish everything under one
// domain).
var excludedKeywords = []string{
	"nfl", "nba", "mlb", "nhl", "motogp", "nascar", "indycar",
	"cricket", "rugby", "tennis", "golf", "boxing", "ufc",
	"premier league", "champions league",
}

// Source describes one selectable news source.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// f1Sources is the fixed source list exposed to callers.
var f1Sources = []Source{
	{ID: "formula1", Name: "Formula1.com"},
	{ID: "motorsport", Name: "Motorsport.com"},
	{ID: "racefans", Name: "RaceFans.net"},
	{ID: "crash", Name: "Crash.net"},
	{ID: "therace", Name: "The Race"},
	{ID: "gpfans", Name: "GPFans"},
}

// Article is a normalized news article.
type Article struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content,omitempty"`
	URL         string  `json:"url"`
	Source      string  `json:"source"`
	Author      *string `json:"author,omitempty"`
	PublishedAt string  `json:"published_at"`
	ImageURL    *string `json:"image_url"`
}

// NewsResponse is the filtered article page returned to callers.
type NewsResponse struct {
	Status   string    `json:"status"`
	Articles []Article `json:"articles"`
	Total    int       `json:"total_results"`
	Provider string    `json:"provider"`
}

// NewsService queries NewsAPI for F1 coverage and applies the keyword
// exclusion and near-duplicate filtering pipeline.
type NewsService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *slog.Logger
}

// NewNewsService creates the news service. A missing API key is a
// construction-time failure: the news subsystem stays unavailable but
// the rest of the process runs.
func NewNewsService(apiKey, baseURL string, appCache *cache.Cache, logger *slog.Logger) (*NewsService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("NEWS_API_KEY not configured")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NewsService{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: newsTimeout},
		cache:      appCache,
		logger:     logger,
	}, nil
}

// Sources returns the fixed trusted source list.
func (s *NewsService) Sources() []Source { return f1Sources }

// Status returns service configuration status.
func (s *NewsService) Status() map[string]interface{} {
	return map[string]interface{}{
		"configured": true,
		"provider":   "newsapi",
		"domains":    allDomains,
	}
}

// GetNews returns a filtered page of F1 articles. sources is an
// optional comma-separated subset of source IDs; unknown IDs are
// ignored and an empty selection falls back to the full allow-list.
func (s *NewsService) GetNews(ctx context.Context, sources string, pageSize, page int) NewsResponse {
	if pageSize < 1 {
		pageSize = newsDefaultPageSize
	}
	if pageSize > newsMaxPageSize {
		pageSize = newsMaxPageSize
	}
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("news:%s:%d:%d", sources, pageSize, page)
	var cached NewsResponse
	if s.cache.GetJSON(cacheKey, &cached) {
		return cached
	}

	raw, err := s.fetch(ctx, selectDomains(sources), pageSize*newsFetchMultiplier, page)
	if err != nil {
		// Domain-restricted query failed; fall back to a plain keyword
		// search before giving up.
		s.logger.Warn("domain-restricted news fetch failed, falling back", "error", err)
		raw, err = s.fetch(ctx, "", pageSize*newsFetchMultiplier, page)
	}
	if err != nil {
		s.logger.Warn("news fetch failed", "error", err)
		return NewsResponse{Status: "error", Articles: []Article{}}
	}

	resp := NewsResponse{
		Status:   "success",
		Articles: filterArticles(raw, pageSize),
		Provider: "newsapi",
	}
	resp.Total = len(resp.Articles)

	s.cache.SetJSON(cacheKey, resp, cache.TTLNews)
	return resp
}

// --------------------------------------------------------------------------
// NewsAPI fetch
// --------------------------------------------------------------------------

type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      *string `json:"author"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Content     string  `json:"content"`
		URL         string  `json:"url"`
		URLToImage  *string `json:"urlToImage"`
		PublishedAt string  `json:"publishedAt"`
	} `json:"articles"`
	Message string `json:"message"` // on error
}

func (s *NewsService) fetch(ctx context.Context, domains string, pageSize, page int) ([]Article, error) {
	fromDate := time.Now().UTC().AddDate(0, 0, -newsLookbackDays).Format("2006-01-02")

	params := url.Values{}
	params.Set("q", `"Formula 1" OR "Formula One" OR F1`)
	params.Set("from", fromDate)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(page))
	if domains != "" {
		params.Set("domains", domains)
	}

	u := s.baseURL + "/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("news decode: %w", err)
	}
	if apiResp.Status != "ok" {
		return nil, fmt.Errorf("news API error: %s", apiResp.Message)
	}

	articles := make([]Article, 0, len(apiResp.Articles))
	for _, a := range apiResp.Articles {
		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			Source:      a.Source.Name,
			Author:      a.Author,
			PublishedAt: a.PublishedAt,
			ImageURL:    a.URLToImage,
		})
	}
	return articles, nil
}

// selectDomains resolves a comma-separated source ID list to domains,
// falling back to the full allow-list.
func selectDomains(sources string) string {
	if sources == "" {
		return strings.Join(allDomains, ",")
	}
	var selected []string
	for _, id := range strings.Split(sources, ",") {
		if domain, ok := sourceDomains[strings.TrimSpace(id)]; ok {
			selected = append(selected, domain)
		}
	}
	if len(selected) == 0 {
		return strings.Join(allDomains, ",")
	}
	return strings.Join(selected, ",")
}

// --------------------------------------------------------------------------
// Filtering pipeline
// --------------------------------------------------------------------------

// filterArticles applies the pipeline in order, first-match-wins per
// article: missing fields, excluded keywords, near-duplicate signature.
// Accepts at most limit articles.
func filterArticles(articles []Article, limit int) []Article {
	accepted := make([]Article, 0, limit)
	var signatures []map[string]struct{}

	for _, a := range articles {
		if len(accepted) >= limit {
			break
		}
		if a.Title == "" || a.Description == "" {
			continue
		}
		if containsExcludedKeyword(a) {
			continue
		}

		sig := articleSignature(a)
		if isDuplicate(sig, signatures) {
			continue
		}

		signatures = append(signatures, sig)
		accepted = append(accepted, a)
	}
	return accepted
}

func containsExcludedKeyword(a Article) bool {
	text := strings.ToLower(a.Title + " " + a.Description + " " + a.Content)
	for _, kw := range excludedKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// articleSignature builds the content signature: the first significant
// words of the title and description (budgets differ), lower-cased.
func articleSignature(a Article) map[string]struct{} {
	sig := make(map[string]struct{}, newsTitleWords+newsDescriptionWords)
	collect := func(text string, budget int) {
		for _, word := range strings.Fields(strings.ToLower(text)) {
			if budget == 0 {
				return
			}
			word = strings.Trim(word, `.,:;!?"'()[]`)
			if len(word) <= newsMinWordLen {
				continue
			}
			sig[word] = struct{}{}
			budget--
		}
	}
	collect(a.Title, newsTitleWords)
	collect(a.Description, newsDescriptionWords)
	return sig
}

// isDuplicate checks the signature against every previously accepted
// one in the batch.
func isDuplicate(sig map[string]struct{}, prior []map[string]struct{}) bool {
	for _, p := range prior {
		if jaccard(sig, p) > newsDedupThreshold {
			return true
		}
	}
	return false
}

// jaccard computes intersection-over-union of two word sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
