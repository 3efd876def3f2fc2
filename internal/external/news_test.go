package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/f1nsight/f1nsight-api/internal/cache"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type apiArticle struct {
	Source      map[string]string `json:"source"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	URL         string            `json:"url"`
	PublishedAt string            `json:"publishedAt"`
}

func newsArticle(source, title, description string) apiArticle {
	return apiArticle{
		Source:      map[string]string{"name": source},
		Title:       title,
		Description: description,
		URL:         "https://example.org/" + strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		PublishedAt: "2025-06-20T10:00:00Z",
	}
}

func newsBody(articles []apiArticle) string {
	body, _ := json.Marshal(map[string]interface{}{
		"status":       "ok",
		"totalResults": len(articles),
		"articles":     articles,
	})
	return string(body)
}

func newTestNewsService(t *testing.T, handler http.HandlerFunc) *NewsService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewNewsService("test-key", srv.URL, cache.New(true), testLogger)
	if err != nil {
		t.Fatalf("NewNewsService: %v", err)
	}
	return svc
}

func TestNewNewsServiceRequiresAPIKey(t *testing.T) {
	if _, err := NewNewsService("", "https://example.org", cache.New(true), testLogger); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestGetNewsFiltersAndDeduplicates(t *testing.T) {
	// 25 raw articles: 3 near-duplicate pairs, 2 off-topic, 1 missing
	// description, then plenty of clean ones. page_size 10 must come
	// back with 10 clean articles. The noise sits at the front so every
	// filter stage runs before the accept limit is reached.
	pairs := [][2]string{
		{"Verstappen storms dominant stunning victory Sunday",
			"Championship leader extends advantage after flawless weekend performance masterclass display"},
		{"Ferrari unveils radical sidepod upgrade package",
			"Scuderia brings aggressive aerodynamic revisions hoping close qualifying deficit McLaren"},
		{"Mercedes junior promoted surprise seat swap",
			"Silver arrows confirm rookie replacing veteran immediate effect following internal review"},
	}
	articles := make([]apiArticle, 0, 25)
	for _, p := range pairs {
		articles = append(articles, newsArticle("Formula1.com", p[0], p[1]))
		articles = append(articles, newsArticle("RaceFans.net", "Report: "+p[0], p[1]+" indeed"))
	}
	// Off-topic sports leak through the domain filter.
	articles = append(articles, newsArticle("Crash.net",
		"MotoGP rider takes pole", "Two-wheel action continues this weekend"))
	articles = append(articles, newsArticle("Crash.net",
		"NASCAR playoff picture tightens", "Stock car standings after latest oval round"))
	// Missing description.
	articles = append(articles, newsArticle("GPFans", "Headline only", ""))
	// Clean articles: enough indexed significant words that no two fall
	// over the similarity threshold.
	for i := 0; i < 16; i++ {
		articles = append(articles, newsArticle("Motorsport.com",
			fmt.Sprintf("Paddock briefing edition%d qualifying analysis", i),
			fmt.Sprintf("Detailed coverage segment%d exploring strategy angle%d with separate insight thread%d from correspondents", i, i, i)))
	}

	var gotPageSize atomic.Int64
	svc := newTestNewsService(t, func(w http.ResponseWriter, r *http.Request) {
		if ps := r.URL.Query().Get("pageSize"); ps != "" {
			var n int
			fmt.Sscanf(ps, "%d", &n)
			gotPageSize.Store(int64(n))
		}
		io.WriteString(w, newsBody(articles))
	})

	resp := svc.GetNews(context.Background(), "", 10, 1)
	if resp.Status != "success" {
		t.Fatalf("Status = %q", resp.Status)
	}
	if len(resp.Articles) != 10 {
		t.Fatalf("got %d articles, want 10", len(resp.Articles))
	}
	if resp.Total != 10 {
		t.Errorf("Total = %d, want 10", resp.Total)
	}
	// Over-fetch: twice the requested page size goes upstream.
	if gotPageSize.Load() != 20 {
		t.Errorf("upstream pageSize = %d, want 20", gotPageSize.Load())
	}

	seen := map[string]bool{}
	for _, a := range resp.Articles {
		lower := strings.ToLower(a.Title + " " + a.Description)
		for _, kw := range []string{"motogp", "nascar"} {
			if strings.Contains(lower, kw) {
				t.Errorf("excluded keyword %q survived: %q", kw, a.Title)
			}
		}
		if a.Description == "" {
			t.Errorf("article without description survived: %q", a.Title)
		}
		if seen[a.Title] {
			t.Errorf("duplicate title survived: %q", a.Title)
		}
		seen[a.Title] = true
	}
}

func TestGetNewsDropsNearDuplicates(t *testing.T) {
	pair := []apiArticle{
		newsArticle("Formula1.com",
			"Hamilton signs shock Ferrari contract extension deal",
			"Seven-time champion commits future Maranello squad after lengthy negotiations concluded"),
		newsArticle("Motorsport.com",
			"Hamilton signs shock Ferrari contract extension deal!",
			"Seven-time champion commits future Maranello squad after lengthy negotiations concluded today"),
	}
	svc := newTestNewsService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, newsBody(pair))
	})

	resp := svc.GetNews(context.Background(), "", 10, 1)
	if len(resp.Articles) != 1 {
		t.Fatalf("got %d articles, want 1 (near-duplicate dropped)", len(resp.Articles))
	}
}

func TestGetNewsFallsBackWithoutDomains(t *testing.T) {
	var calls atomic.Int32
	svc := newTestNewsService(t, func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		if r.URL.Query().Get("domains") != "" {
			// Domain-restricted query fails; the plain query succeeds.
			io.WriteString(w, `{"status":"error","message":"domains not allowed on this plan"}`)
			return
		}
		if n < 2 {
			t.Error("plain-query fallback ran before the domain query")
		}
		io.WriteString(w, newsBody([]apiArticle{
			newsArticle("Reuters", "Formula 1 announces calendar", "Next season schedule confirmed with record races"),
		}))
	})

	resp := svc.GetNews(context.Background(), "", 10, 1)
	if resp.Status != "success" {
		t.Fatalf("Status = %q, fallback did not recover", resp.Status)
	}
	if len(resp.Articles) != 1 {
		t.Errorf("got %d articles, want 1", len(resp.Articles))
	}
	if calls.Load() != 2 {
		t.Errorf("upstream called %d times, want 2 (domain then fallback)", calls.Load())
	}
}

func TestGetNewsErrorWhenBothQueriesFail(t *testing.T) {
	svc := newTestNewsService(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"error","message":"apiKeyInvalid"}`)
	})

	resp := svc.GetNews(context.Background(), "", 10, 1)
	if resp.Status != "error" {
		t.Errorf("Status = %q, want error", resp.Status)
	}
	if resp.Articles == nil || len(resp.Articles) != 0 {
		t.Errorf("Articles = %v, want empty non-nil", resp.Articles)
	}
}

func TestGetNewsCachedPerParameterSet(t *testing.T) {
	var calls atomic.Int32
	svc := newTestNewsService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		io.WriteString(w, newsBody([]apiArticle{
			newsArticle("Formula1.com", "Grand Prix preview this weekend", "Everything about the upcoming round schedule times"),
		}))
	})

	ctx := context.Background()
	svc.GetNews(ctx, "", 10, 1)
	svc.GetNews(ctx, "", 10, 1)
	if calls.Load() != 1 {
		t.Errorf("upstream called %d times for identical params, want 1", calls.Load())
	}

	svc.GetNews(ctx, "formula1", 10, 1)
	svc.GetNews(ctx, "", 20, 1)
	svc.GetNews(ctx, "", 10, 2)
	if calls.Load() != 4 {
		t.Errorf("upstream called %d times, want 4 (distinct params bypass cache)", calls.Load())
	}
}

func TestGetNewsClampsPageSize(t *testing.T) {
	var gotPageSize atomic.Int64
	svc := newTestNewsService(t, func(w http.ResponseWriter, r *http.Request) {
		var n int
		fmt.Sscanf(r.URL.Query().Get("pageSize"), "%d", &n)
		gotPageSize.Store(int64(n))
		io.WriteString(w, newsBody(nil))
	})

	svc.GetNews(context.Background(), "", 500, 1)
	if gotPageSize.Load() != int64(newsMaxPageSize*newsFetchMultiplier) {
		t.Errorf("upstream pageSize = %d, want %d", gotPageSize.Load(), newsMaxPageSize*newsFetchMultiplier)
	}

	svc.GetNews(context.Background(), "", -3, 1)
	if gotPageSize.Load() != int64(newsDefaultPageSize*newsFetchMultiplier) {
		t.Errorf("upstream pageSize = %d, want %d", gotPageSize.Load(), newsDefaultPageSize*newsFetchMultiplier)
	}
}

func TestSelectDomains(t *testing.T) {
	all := strings.Join(allDomains, ",")
	cases := []struct {
		in   string
		want string
	}{
		{"", all},
		{"formula1", "formula1.com"},
		{"formula1,crash", "formula1.com,crash.net"},
		{" formula1 , crash ", "formula1.com,crash.net"},
		{"unknown", all},
		{"unknown,therace", "the-race.com"},
	}
	for _, tc := range cases {
		if got := selectDomains(tc.in); got != tc.want {
			t.Errorf("selectDomains(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestArticleSignature(t *testing.T) {
	a := Article{
		Title:       "Max Verstappen wins the big one!",
		Description: "The championship leader took another dominant victory on Sunday afternoon at Monza.",
	}
	sig := articleSignature(a)

	// Short words (<= 3 runes) never count.
	for _, short := range []string{"max", "the", "big", "one", "on", "at"} {
		if _, ok := sig[short]; ok {
			t.Errorf("short word %q in signature", short)
		}
	}
	for _, long := range []string{"verstappen", "wins", "championship", "leader"} {
		if _, ok := sig[long]; !ok {
			t.Errorf("significant word %q missing from signature", long)
		}
	}
}

func TestJaccard(t *testing.T) {
	set := func(words ...string) map[string]struct{} {
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			m[w] = struct{}{}
		}
		return m
	}

	cases := []struct {
		name string
		a, b map[string]struct{}
		want float64
	}{
		{"identical", set("alpha", "beta"), set("alpha", "beta"), 1},
		{"disjoint", set("alpha"), set("beta"), 0},
		{"half", set("alpha", "beta", "gamma"), set("alpha", "beta", "delta"), 0.5},
		{"both empty", set(), set(), 0},
		{"one empty", set("alpha"), set(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := jaccard(tc.a, tc.b); got != tc.want {
				t.Errorf("jaccard = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSourcesFixedList(t *testing.T) {
	svc, err := NewNewsService("k", "https://example.org", cache.New(false), testLogger)
	if err != nil {
		t.Fatal(err)
	}
	sources := svc.Sources()
	if len(sources) != 6 {
		t.Fatalf("got %d sources, want 6", len(sources))
	}
	if sources[0].ID != "formula1" {
		t.Errorf("sources[0] = %+v", sources[0])
	}
}
