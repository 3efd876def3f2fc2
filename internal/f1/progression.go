package f1

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/f1nsight/f1nsight-api/internal/ergast"
)

// PointsProgression returns a driver's cumulative points across a
// season's completed races, one entry per race in round order.
//
// Races whose result fetch fails still appear in the output with the
// prior total carried forward, so the sequence length always equals the
// number of completed races and the values are non-decreasing. A race
// where the driver did not score (or did not start) contributes 0.
func (s *Service) PointsProgression(ctx context.Context, season, driverName string) Progression {
	races := s.completedRaces(ctx, season)
	if len(races) == 0 {
		return Progression{Labels: []string{}, Points: []float64{}}
	}

	// One result fetch per round, in parallel. Bounded by the round
	// count (max ~24), not an open pool; the cache absorbs repeats.
	results := make(map[string][]ergast.RawResult, len(races))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, race := range races {
		wg.Add(1)
		go func(round string) {
			defer wg.Done()
			env, err := s.client.RoundResults(ctx, season, round)
			if err != nil {
				s.logger.Warn("round results fetch failed", "season", season, "round", round, "error", err)
				return
			}
			raw := raceTableRaces(env)
			if len(raw) == 0 {
				return
			}
			mu.Lock()
			results[round] = raw[0].Results
			mu.Unlock()
		}(race.Round)
	}
	wg.Wait()

	prog := Progression{
		Labels: make([]string, 0, len(races)),
		Points: make([]float64, 0, len(races)),
	}

	var total float64
	target := strings.ToLower(strings.TrimSpace(driverName))

	for _, race := range races {
		if rows, ok := results[race.Round]; ok {
			for _, result := range rows {
				name := strings.ToLower(fullName(result.Driver.GivenName, result.Driver.FamilyName))
				if name == target {
					total += parsePoints(result.Points)
					break
				}
			}
		}
		// Fetch failure: carry the running total forward unchanged.
		prog.Labels = append(prog.Labels, race.RaceName)
		prog.Points = append(prog.Points, total)
	}

	return prog
}

// CompareDrivers aligns two drivers' progressions for one season on a
// shared race axis. The axis is the longer of the two sequences; the
// shorter is right-padded by repeating its last value (0 if empty).
func (s *Service) CompareDrivers(ctx context.Context, season, driverA, driverB string) Comparison {
	if season == "" {
		season = s.CurrentSeason()
	}

	progA := s.PointsProgression(ctx, season, driverA)
	progB := s.PointsProgression(ctx, season, driverB)

	labels := progA.Labels
	if len(progB.Labels) > len(labels) {
		labels = progB.Labels
	}

	return Comparison{
		Season:  season,
		Races:   labels,
		DriverA: driverA,
		DriverB: driverB,
		PointsA: padRight(progA.Points, len(labels)),
		PointsB: padRight(progB.Points, len(labels)),
	}
}

// completedRaces returns the season's races with a date on or before
// now, in round order.
func (s *Service) completedRaces(ctx context.Context, season string) []Race {
	all := s.RacesBySeason(ctx, season)
	now := s.now()

	completed := make([]Race, 0, len(all))
	for _, race := range all {
		date, err := time.Parse("2006-01-02", race.Date)
		if err != nil {
			continue
		}
		if !date.After(now) {
			completed = append(completed, race)
		}
	}

	sort.SliceStable(completed, func(a, b int) bool {
		ra, _ := strconv.Atoi(completed[a].Round)
		rb, _ := strconv.Atoi(completed[b].Round)
		return ra < rb
	})
	return completed
}

// padRight extends points to length n by repeating the last value, or 0
// for an empty sequence.
func padRight(points []float64, n int) []float64 {
	if len(points) >= n {
		return points
	}
	last := 0.0
	if len(points) > 0 {
		last = points[len(points)-1]
	}
	padded := make([]float64, 0, n)
	padded = append(padded, points...)
	for len(padded) < n {
		padded = append(padded, last)
	}
	return padded
}
