package f1

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/f1nsight/f1nsight-api/internal/ergast"
)

// AvailableSeasons returns every season label the upstream knows about,
// most recent first.
func (s *Service) AvailableSeasons(ctx context.Context) []string {
	env, err := s.client.Seasons(ctx)
	if err != nil {
		s.logger.Warn("season list fetch failed", "error", err)
		return []string{}
	}
	if env == nil || env.SeasonTable == nil {
		return []string{}
	}

	years := make([]string, 0, len(env.SeasonTable.Seasons))
	for _, season := range env.SeasonTable.Seasons {
		if season.Season != "" {
			years = append(years, season.Season)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

// RacesBySeason returns the race calendar for a season in round order.
func (s *Service) RacesBySeason(ctx context.Context, season string) []Race {
	if season == "" {
		season = s.CurrentSeason()
	}

	env, err := s.client.Races(ctx, season)
	if err != nil {
		s.logger.Warn("race calendar fetch failed", "season", season, "error", err)
		return []Race{}
	}
	raw := raceTableRaces(env)

	races := make([]Race, 0, len(raw))
	for _, race := range raw {
		races = append(races, newRace(race))
	}
	sortByRound(races, func(i int) string { return races[i].Round })
	return races
}

// RaceResults returns one race with its full classification. When the
// race has no results yet (a future round), the calendar entry is
// returned with IsFutureRace set instead of an empty struct, so callers
// can still render the event. A nil return means the round is unknown.
func (s *Service) RaceResults(ctx context.Context, season, round string) *RaceDetail {
	env, err := s.client.RoundResults(ctx, season, round)
	if err != nil {
		s.logger.Warn("race results fetch failed", "season", season, "round", round, "error", err)
		return nil
	}

	raw := raceTableRaces(env)
	if len(raw) == 0 {
		return s.futureRace(ctx, season, round)
	}

	race := raw[0]
	detail := &RaceDetail{
		Race:    newRace(race),
		Results: make([]RaceResultRow, 0, len(race.Results)),
	}

	for _, result := range race.Results {
		if result.Position == "" && result.PositionText == "" {
			continue
		}
		detail.Results = append(detail.Results, newRaceResultRow(result))
	}
	return detail
}

// futureRace looks the round up in the season calendar and flags it as
// not yet run.
func (s *Service) futureRace(ctx context.Context, season, round string) *RaceDetail {
	env, err := s.client.Races(ctx, season)
	if err != nil {
		return nil
	}

	for _, race := range raceTableRaces(env) {
		if race.Round != round {
			continue
		}
		detail := &RaceDetail{
			Race:         newRace(race),
			Results:      []RaceResultRow{},
			IsFutureRace: true,
		}
		if dt, ok := raceDateTime(race); ok {
			detail.IsFutureRace = dt.After(s.now())
			detail.RaceDateTime = dt.UTC().Format("2006-01-02 15:04:05 UTC")
		}
		return detail
	}
	return nil
}

// --------------------------------------------------------------------------
// Parse-with-defaults constructors
// --------------------------------------------------------------------------

func newRace(race ergast.RawRace) Race {
	country := race.Circuit.Location.Country
	return Race{
		Season:      race.Season,
		Round:       race.Round,
		RaceName:    orDefault(race.RaceName, "Unknown"),
		CircuitName: race.Circuit.CircuitName,
		CircuitID:   race.Circuit.CircuitID,
		Country:     country,
		CountryCode: CountryCode(country),
		Locality:    race.Circuit.Location.Locality,
		Date:        race.Date,
		Time:        race.Time,
		URL:         race.URL,
	}
}

func newRaceResultRow(result ergast.RawResult) RaceResultRow {
	row := RaceResultRow{
		Position:        orDefault(result.Position, result.PositionText),
		DriverName:      fullName(result.Driver.GivenName, result.Driver.FamilyName),
		DriverID:        result.Driver.DriverID,
		DriverCode:      driverCode(result.Driver.Code, result.Driver.GivenName, result.Driver.FamilyName),
		DriverNumber:    result.Driver.PermanentNumber,
		ConstructorName: result.Constructor.Name,
		ConstructorID:   result.Constructor.ConstructorID,
		Grid:            result.Grid,
		Laps:            result.Laps,
		Status:          result.Status,
		Points:          orDefault(result.Points, "0"),
	}
	if result.Time != nil {
		row.Time = result.Time.Time
	}
	if result.FastestLap != nil {
		row.FastestLap = result.FastestLap.Rank
		if result.FastestLap.Time != nil {
			row.FastestLapTime = result.FastestLap.Time.Time
		}
	}
	return row
}

// raceTableRaces digs out the race list, nil-safe at every level.
func raceTableRaces(env *ergast.MRData) []ergast.RawRace {
	if env == nil || env.RaceTable == nil {
		return nil
	}
	return env.RaceTable.Races
}

// raceDateTime combines the upstream date and optional time fields.
func raceDateTime(race ergast.RawRace) (time.Time, bool) {
	if race.Date == "" {
		return time.Time{}, false
	}
	t := race.Time
	if t == "" {
		t = "00:00:00Z"
	}
	dt, err := time.Parse(time.RFC3339, race.Date+"T"+strings.TrimSuffix(t, "Z")+"Z")
	if err != nil {
		return time.Time{}, false
	}
	return dt, true
}

// sortByRound orders entries by integer round value.
func sortByRound[T any](entries []T, round func(int) string) {
	sort.SliceStable(entries, func(a, b int) bool {
		ra, _ := strconv.Atoi(round(a))
		rb, _ := strconv.Atoi(round(b))
		return ra < rb
	})
}
