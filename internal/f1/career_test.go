package f1

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// seasonResults builds a driver-results body: one race per (position)
// entry, each carrying a single result row for the driver.
func seasonResults(season string, positions ...string) string {
	races := make([]string, 0, len(positions))
	for i, pos := range positions {
		races = append(races, fmt.Sprintf(`{"season":%q,"round":"%d","raceName":"Round %d","date":"%s-05-01",
			"Circuit":{"circuitId":"cir","circuitName":"Circuit","Location":{"locality":"Town","country":"Italy"}},
			"Results":[%s]}`,
			season, i+1, i+1, season,
			resultRow(pos, "0", "alonso", "Fernando", "Alonso")))
	}
	return fmt.Sprintf(`{"MRData":{"RaceTable":{"season":%q,"Races":[%s]}}}`,
		season, strings.Join(races, ","))
}

func careerRoutes() map[string]string {
	return map[string]string{
		"/drivers/alonso/seasons.json": `{"MRData":{"SeasonTable":{"Seasons":[
			{"season":"2005"},{"season":"2006"},{"season":"2007"}
		]}}}`,
		"/2005/drivers/alonso/results.json": seasonResults("2005", "1", "3", "7", "R"),
		"/2006/drivers/alonso/results.json": seasonResults("2006", "1", "1", "2"),
		// 2007 deliberately unrouted: a season whose fetch fails is left
		// out of the totals.
	}
}

func TestCareerStatsAggregation(t *testing.T) {
	svc := newTestService(t, careerRoutes())

	stats := svc.CareerStats(context.Background(), "alonso")
	if stats == nil {
		t.Fatal("CareerStats returned nil")
	}

	if stats.TotalRaces != 7 {
		t.Errorf("TotalRaces = %d, want 7", stats.TotalRaces)
	}
	if stats.TotalWins != 3 {
		t.Errorf("TotalWins = %d, want 3", stats.TotalWins)
	}
	if stats.TotalPodiums != 5 {
		t.Errorf("TotalPodiums = %d, want 5 (wins included)", stats.TotalPodiums)
	}
	if stats.BestFinish != "1" {
		t.Errorf("BestFinish = %q, want 1", stats.BestFinish)
	}
	if stats.FirstSeason != "2005" || stats.LastSeason != "2006" {
		t.Errorf("season bounds = %q..%q, want 2005..2006 (failed season excluded)",
			stats.FirstSeason, stats.LastSeason)
	}
}

func TestCareerStatsNonNumericPositionsIgnored(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/drivers/grosjean/seasons.json": `{"MRData":{"SeasonTable":{"Seasons":[{"season":"2012"}]}}}`,
		"/2012/drivers/grosjean/results.json": func() string {
			races := []string{`{"season":"2012","round":"1","raceName":"Round 1","date":"2012-03-18",
				"Circuit":{"circuitId":"cir","circuitName":"Circuit","Location":{"locality":"Town","country":"Italy"}},
				"Results":[{"position":"","positionText":"R","points":"0","status":"Collision",
					"Driver":{"driverId":"grosjean","givenName":"Romain","familyName":"Grosjean"},
					"Constructor":{"constructorId":"lotus","name":"Lotus"}}]}`}
			return fmt.Sprintf(`{"MRData":{"RaceTable":{"season":"2012","Races":[%s]}}}`, strings.Join(races, ","))
		}(),
	})

	stats := svc.CareerStats(context.Background(), "grosjean")
	if stats == nil {
		t.Fatal("CareerStats returned nil")
	}
	if stats.TotalRaces != 1 {
		t.Errorf("TotalRaces = %d, want 1 (DNFs still count as starts)", stats.TotalRaces)
	}
	if stats.TotalWins != 0 || stats.TotalPodiums != 0 {
		t.Errorf("wins/podiums = %d/%d, want 0/0", stats.TotalWins, stats.TotalPodiums)
	}
	if stats.BestFinish != "N/A" {
		t.Errorf("BestFinish = %q, want N/A with no classified finish", stats.BestFinish)
	}
}

func TestCareerStatsUnknownDriver(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"/drivers/nobody/seasons.json": `{"MRData":{"SeasonTable":{"Seasons":[]}}}`,
	})

	if stats := svc.CareerStats(context.Background(), "nobody"); stats != nil {
		t.Errorf("CareerStats = %+v, want nil for unknown driver", stats)
	}
}

func TestCareerStatsCachedLongTerm(t *testing.T) {
	svc, upstream := newTestServiceUpstream(t, careerRoutes())

	first := svc.CareerStats(context.Background(), "alonso")
	if first == nil {
		t.Fatal("first CareerStats returned nil")
	}

	// Remove the upstream data; the aggregate must now come from cache.
	upstream.remove("/drivers/alonso/seasons.json")

	second := svc.CareerStats(context.Background(), "alonso")
	if second == nil {
		t.Fatal("second CareerStats returned nil, aggregate not cached")
	}
	if *second != *first {
		t.Errorf("cached aggregate %+v differs from original %+v", *second, *first)
	}
}
