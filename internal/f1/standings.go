package f1

import (
	"context"
	"sort"
	"strconv"

	"github.com/f1nsight/f1nsight-api/internal/ergast"
)

// DriverStandings returns the driver championship table for a season.
// Entries missing a driver name or points are dropped; the rest of the
// list is still returned. Upstream failures degrade to an empty slice.
func (s *Service) DriverStandings(ctx context.Context, season string) []DriverStanding {
	if season == "" {
		season = s.CurrentSeason()
	}

	env, err := s.client.DriverStandings(ctx, season)
	if err != nil {
		s.logger.Warn("driver standings fetch failed", "season", season, "error", err)
		return []DriverStanding{}
	}

	raw := firstStandingsList(env)
	if raw == nil {
		return []DriverStanding{}
	}

	standings := make([]DriverStanding, 0, len(raw.DriverStandings))
	for _, st := range raw.DriverStandings {
		name := fullName(st.Driver.GivenName, st.Driver.FamilyName)
		if name == "" || st.Points == "" {
			continue
		}
		constructor := ""
		if len(st.Constructors) > 0 {
			constructor = NormalizeConstructor(st.Constructors[0].Name)
		}
		standings = append(standings, DriverStanding{
			Position:    standingPosition(st.Position, st.PositionText),
			Points:      st.Points,
			Wins:        orDefault(st.Wins, "0"),
			Driver:      name,
			DriverID:    st.Driver.DriverID,
			Constructor: constructor,
		})
	}

	if allPositionsTied(standings, func(i int) string { return standings[i].Position }) {
		sort.SliceStable(standings, func(a, b int) bool {
			return parsePoints(standings[a].Points) > parsePoints(standings[b].Points)
		})
		for i := range standings {
			standings[i].Position = strconv.Itoa(i + 1)
		}
	}

	return standings
}

// ConstructorStandings returns the constructor championship table for a
// season with normalized team names.
func (s *Service) ConstructorStandings(ctx context.Context, season string) []ConstructorStanding {
	if season == "" {
		season = s.CurrentSeason()
	}

	env, err := s.client.ConstructorStandings(ctx, season)
	if err != nil {
		s.logger.Warn("constructor standings fetch failed", "season", season, "error", err)
		return []ConstructorStanding{}
	}

	raw := firstStandingsList(env)
	if raw == nil {
		return []ConstructorStanding{}
	}

	standings := make([]ConstructorStanding, 0, len(raw.ConstructorStandings))
	for _, st := range raw.ConstructorStandings {
		if st.Constructor.Name == "" || st.Points == "" {
			continue
		}
		standings = append(standings, ConstructorStanding{
			Position:    standingPosition(st.Position, st.PositionText),
			Points:      st.Points,
			Wins:        orDefault(st.Wins, "0"),
			Constructor: NormalizeConstructor(st.Constructor.Name),
		})
	}

	if allPositionsTied(standings, func(i int) string { return standings[i].Position }) {
		// Stable sort keeps upstream relative order among equal totals.
		sort.SliceStable(standings, func(a, b int) bool {
			return parsePoints(standings[a].Points) > parsePoints(standings[b].Points)
		})
		for i := range standings {
			standings[i].Position = strconv.Itoa(i + 1)
		}
	}

	return standings
}

// firstStandingsList digs out the first standings list, nil-safe at
// every level of the envelope.
func firstStandingsList(env *ergast.MRData) *ergast.StandingsList {
	if env == nil || env.StandingsTable == nil || len(env.StandingsTable.StandingsLists) == 0 {
		return nil
	}
	return &env.StandingsTable.StandingsLists[0]
}

// standingPosition prefers the numeric position, falling back to the
// positionText placeholder the upstream uses for ties and exclusions.
func standingPosition(position, positionText string) string {
	if position != "" {
		return position
	}
	return orDefault(positionText, "0")
}

// allPositionsTied reports whether no entry carries a numeric position,
// i.e. the whole table came back with tie placeholders and position
// must be re-derived from points.
func allPositionsTied[T any](entries []T, pos func(int) string) bool {
	if len(entries) == 0 {
		return false
	}
	for i := range entries {
		if _, ok := parsePosition(pos(i)); ok {
			return false
		}
	}
	return true
}
