package f1

import (
	"context"
	"strconv"

	"github.com/f1nsight/f1nsight-api/internal/cache"
)

// CareerStats accumulates a driver's full-career totals across every
// season they participated in. The aggregate is cached long-term keyed
// by driver ID; within the cache window it is never recomputed.
//
// Best finish is the minimum numeric position seen anywhere in the
// career; non-numeric statuses (Retired, DNF, DSQ) are ignored. Which
// race achieved the best finish is deliberately not tracked.
func (s *Service) CareerStats(ctx context.Context, driverID string) *CareerStats {
	cacheKey := "career_stats:" + driverID

	var cached CareerStats
	if s.cache.GetJSON(cacheKey, &cached) {
		return &cached
	}

	env, err := s.client.DriverSeasons(ctx, driverID)
	if err != nil {
		s.logger.Warn("driver seasons fetch failed", "driver", driverID, "error", err)
		return nil
	}
	if env == nil || env.SeasonTable == nil || len(env.SeasonTable.Seasons) == 0 {
		return nil
	}

	stats := CareerStats{BestFinish: "N/A", FirstSeason: "N/A", LastSeason: "N/A"}
	bestFinish := 0

	for _, season := range env.SeasonTable.Seasons {
		year := season.Season
		if year == "" {
			continue
		}

		seasonEnv, err := s.client.DriverResults(ctx, year, driverID)
		if err != nil {
			// A season that fails to fetch is left out of the totals;
			// the remaining seasons still count.
			s.logger.Warn("season results fetch failed", "driver", driverID, "season", year, "error", err)
			continue
		}
		races := raceTableRaces(seasonEnv)
		if len(races) == 0 {
			continue
		}

		stats.TotalRaces += len(races)

		for _, race := range races {
			for _, result := range race.Results {
				pos, ok := parsePosition(result.Position)
				if !ok {
					continue
				}
				if pos == 1 {
					stats.TotalWins++
				}
				if pos <= 3 {
					stats.TotalPodiums++
				}
				if bestFinish == 0 || pos < bestFinish {
					bestFinish = pos
				}
			}
		}

		if stats.FirstSeason == "N/A" || year < stats.FirstSeason {
			stats.FirstSeason = year
		}
		if stats.LastSeason == "N/A" || year > stats.LastSeason {
			stats.LastSeason = year
		}
	}

	if bestFinish > 0 {
		stats.BestFinish = strconv.Itoa(bestFinish)
	}

	s.cache.SetJSON(cacheKey, stats, cache.TTLCareer)
	return &stats
}
