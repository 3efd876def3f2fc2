package cache

import (
	"strings"
	"testing"
	"time"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := New(true)

	etag := c.Set("k", []byte(`{"a":1}`), TTLSeason)
	if etag == "" {
		t.Fatal("Set returned empty etag")
	}

	data, gotETag, ok := c.Get("k")
	if !ok {
		t.Fatal("Get missed a freshly set key")
	}
	if string(data) != `{"a":1}` {
		t.Errorf("data = %q, want %q", data, `{"a":1}`)
	}
	if gotETag != etag {
		t.Errorf("etag = %q, want %q", gotETag, etag)
	}
}

func TestGetMissingKey(t *testing.T) {
	c := New(true)
	if _, _, ok := c.Get("nope"); ok {
		t.Error("Get returned ok for a key never set")
	}
}

func TestDisabledCacheIsNoop(t *testing.T) {
	c := New(false)

	etag := c.Set("k", []byte("v"), TTLSeason)
	if etag == "" {
		t.Error("disabled cache should still compute an etag")
	}
	if _, _, ok := c.Get("k"); ok {
		t.Error("disabled cache returned a hit")
	}
}

func TestLazyExpiry(t *testing.T) {
	c := New(true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return now })

	c.Set("short", []byte("a"), TTLSeason)
	c.Set("long", []byte("b"), TTLCareer)

	// Just inside the short tier.
	now = now.Add(TTLSeason - time.Second)
	if _, _, ok := c.Get("short"); !ok {
		t.Error("short-tier entry expired before its TTL")
	}

	// Past the short tier, inside the long tier.
	now = now.Add(2 * time.Second)
	if _, _, ok := c.Get("short"); ok {
		t.Error("short-tier entry survived past its TTL")
	}
	if _, _, ok := c.Get("long"); !ok {
		t.Error("long-tier entry expired with the short tier")
	}

	// Past the long tier.
	now = now.Add(TTLCareer)
	if _, _, ok := c.Get("long"); ok {
		t.Error("long-tier entry survived past its TTL")
	}
}

func TestEntryStaleExactlyAtDeadline(t *testing.T) {
	c := New(true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return now })

	c.Set("k", []byte("v"), time.Minute)
	now = now.Add(time.Minute)

	if _, _, ok := c.Get("k"); ok {
		t.Error("entry read exactly at storage time + TTL must be a miss")
	}
}

func TestExpiredEntryDeletedOnRead(t *testing.T) {
	c := New(true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return now })

	c.Set("k", []byte("v"), time.Minute)
	now = now.Add(2 * time.Minute)
	c.Get("k")

	stats := c.Stats()
	if total := stats["total_keys"].(int); total != 0 {
		t.Errorf("total_keys = %d after expired read, want 0", total)
	}
}

func TestOverwriteRefreshesTTL(t *testing.T) {
	c := New(true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return now })

	c.Set("k", []byte("old"), time.Minute)
	now = now.Add(50 * time.Second)
	c.Set("k", []byte("new"), time.Minute)
	now = now.Add(30 * time.Second)

	data, _, ok := c.Get("k")
	if !ok {
		t.Fatal("entry expired despite refreshed TTL")
	}
	if string(data) != "new" {
		t.Errorf("data = %q, want %q", data, "new")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := New(true)

	type view struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	c.SetJSON("k", view{Name: "monza", Count: 3}, TTLSeason)

	var got view
	if !c.GetJSON("k", &got) {
		t.Fatal("GetJSON missed")
	}
	if got.Name != "monza" || got.Count != 3 {
		t.Errorf("got %+v", got)
	}
}

func TestComputeETagIsWeakAndStable(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	if a != b {
		t.Errorf("same data produced different etags: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, `W/"`) {
		t.Errorf("etag %q is not weak-form", a)
	}
	if ComputeETag([]byte("other")) == a {
		t.Error("different data produced identical etags")
	}
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("x"))
	cases := []struct {
		name        string
		ifNoneMatch string
		want        bool
	}{
		{"empty header", "", false},
		{"wildcard", "*", true},
		{"exact", etag, true},
		{"mismatch", `W/"deadbeef"`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckETagMatch(tc.ifNoneMatch, etag); got != tc.want {
				t.Errorf("CheckETagMatch(%q) = %v, want %v", tc.ifNoneMatch, got, tc.want)
			}
		})
	}
}

func TestStats(t *testing.T) {
	c := New(true)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return now })

	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Hour)
	now = now.Add(2 * time.Minute)

	stats := c.Stats()
	if stats["total_keys"].(int) != 2 {
		t.Errorf("total_keys = %v, want 2", stats["total_keys"])
	}
	if stats["active_keys"].(int) != 1 {
		t.Errorf("active_keys = %v, want 1", stats["active_keys"])
	}
	if stats["expired_keys"].(int) != 1 {
		t.Errorf("expired_keys = %v, want 1", stats["expired_keys"])
	}
}
