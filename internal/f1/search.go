package f1

import (
	"context"
	"sort"
	"strconv"
	"strings"
)

// SearchDrivers filters a season's roster by a case-insensitive
// substring match against given name, family name, or full name. An
// empty query matches all. Season standings are attached when
// available, with explicit zero placeholders otherwise. Results sort
// ascending by position, unknown/zero positions pushed to the end,
// tie-broken by name.
func (s *Service) SearchDrivers(ctx context.Context, season, query string) []Driver {
	if season == "" {
		season = s.CurrentSeason()
	}

	env, err := s.client.Drivers(ctx, season)
	if err != nil {
		s.logger.Warn("driver roster fetch failed", "season", season, "error", err)
		return []Driver{}
	}
	if env == nil || env.DriverTable == nil {
		return []Driver{}
	}

	standings := s.standingsByDriverID(ctx, season)
	query = strings.ToLower(query)

	matches := make([]Driver, 0, len(env.DriverTable.Drivers))
	for _, raw := range env.DriverTable.Drivers {
		name := fullName(raw.GivenName, raw.FamilyName)
		if query != "" &&
			!strings.Contains(strings.ToLower(raw.GivenName), query) &&
			!strings.Contains(strings.ToLower(raw.FamilyName), query) &&
			!strings.Contains(strings.ToLower(name), query) {
			continue
		}

		driver := Driver{
			ID:          raw.DriverID,
			Name:        name,
			Nationality: orDefault(raw.Nationality, "Unknown"),
			DateOfBirth: raw.DateOfBirth,
			WikiURL:     raw.URL,
			Code:        driverCode(raw.Code, raw.GivenName, raw.FamilyName),
			Number:      raw.PermanentNumber,
			Position:    "0",
			Points:      "0",
			Wins:        "0",
		}
		if st, ok := standings[raw.DriverID]; ok {
			driver.Position = st.Position
			driver.Points = st.Points
			driver.Wins = st.Wins
			driver.Constructor = st.Constructor
		}
		matches = append(matches, driver)
	}

	sort.SliceStable(matches, func(a, b int) bool {
		pa := positionSortKey(matches[a].Position)
		pb := positionSortKey(matches[b].Position)
		if pa != pb {
			return pa < pb
		}
		return matches[a].Name < matches[b].Name
	})
	return matches
}

// DriverProfile returns the full profile for one driver, optionally
// with that season's standing, neighbours in the standings, and career
// totals. Returns nil for an unknown driver ID.
func (s *Service) DriverProfile(ctx context.Context, driverID, season string, loadCareerStats bool) *Profile {
	env, err := s.client.Driver(ctx, driverID)
	if err != nil {
		s.logger.Warn("driver fetch failed", "driver", driverID, "error", err)
		return nil
	}
	if env == nil || env.DriverTable == nil || len(env.DriverTable.Drivers) == 0 {
		return nil
	}

	raw := env.DriverTable.Drivers[0]
	profile := &Profile{
		ID:          raw.DriverID,
		Name:        fullName(raw.GivenName, raw.FamilyName),
		GivenName:   raw.GivenName,
		FamilyName:  raw.FamilyName,
		Nationality: orDefault(raw.Nationality, "Unknown"),
		DateOfBirth: raw.DateOfBirth,
		WikiURL:     raw.URL,
		Code:        driverCode(raw.Code, raw.GivenName, raw.FamilyName),
		Number:      raw.PermanentNumber,
		Seasons:     map[string]SeasonStanding{},
	}

	if season != "" {
		if st := s.seasonStanding(ctx, season, driverID); st != nil {
			profile.Seasons[season] = *st
		}
		s.attachNeighbours(ctx, profile, season, driverID)
	}

	if loadCareerStats {
		profile.CareerStats = s.CareerStats(ctx, driverID)
	}
	return profile
}

// DriverResults returns a driver's flattened race results for a season
// in calendar order.
func (s *Service) DriverResults(ctx context.Context, driverID, season string) []DriverRaceResult {
	env, err := s.client.DriverResults(ctx, season, driverID)
	if err != nil {
		s.logger.Warn("driver results fetch failed", "driver", driverID, "season", season, "error", err)
		return []DriverRaceResult{}
	}

	races := raceTableRaces(env)
	results := make([]DriverRaceResult, 0, len(races))
	for _, race := range races {
		if len(race.Results) == 0 {
			continue
		}
		result := race.Results[0] // one result per race for a single driver
		country := race.Circuit.Location.Country
		results = append(results, DriverRaceResult{
			Round:       race.Round,
			RaceName:    race.RaceName,
			CircuitName: race.Circuit.CircuitName,
			Date:        race.Date,
			Country:     country,
			CountryCode: CountryCode(country),
			Grid:        orDefault(result.Grid, "N/A"),
			Position:    orDefault(result.Position, "N/A"),
			Points:      orDefault(result.Points, "0"),
			Status:      orDefault(result.Status, "Unknown"),
			Constructor: orDefault(result.Constructor.Name, "Unknown"),
		})
	}
	return results
}

// --------------------------------------------------------------------------
// Internals
// --------------------------------------------------------------------------

// standingsByDriverID indexes a season's driver standings for roster
// attachment. Incomplete entries are skipped.
func (s *Service) standingsByDriverID(ctx context.Context, season string) map[string]DriverStanding {
	index := make(map[string]DriverStanding)
	for _, st := range s.DriverStandings(ctx, season) {
		if st.DriverID != "" {
			index[st.DriverID] = st
		}
	}
	return index
}

// seasonStanding fetches a single driver's standing within a season.
func (s *Service) seasonStanding(ctx context.Context, season, driverID string) *SeasonStanding {
	env, err := s.client.DriverSeasonStanding(ctx, season, driverID)
	if err != nil {
		return nil
	}
	list := firstStandingsList(env)
	if list == nil || len(list.DriverStandings) == 0 {
		return nil
	}

	raw := list.DriverStandings[0]
	st := &SeasonStanding{
		Position: standingPosition(raw.Position, raw.PositionText),
		Points:   orDefault(raw.Points, "0"),
		Wins:     orDefault(raw.Wins, "0"),
	}
	if len(raw.Constructors) > 0 {
		st.Constructor = NormalizeConstructor(raw.Constructors[0].Name)
	}
	return st
}

// attachNeighbours links the drivers immediately above and below in the
// season standings for profile navigation.
func (s *Service) attachNeighbours(ctx context.Context, profile *Profile, season, driverID string) {
	roster := s.SearchDrivers(ctx, season, "")
	idx := -1
	for i, d := range roster {
		if d.ID == driverID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	if idx > 0 {
		prev := roster[idx-1]
		profile.PrevDriver = &DriverLink{ID: prev.ID, Name: prev.Name, Position: prev.Position}
	}
	if idx < len(roster)-1 {
		next := roster[idx+1]
		profile.NextDriver = &DriverLink{ID: next.ID, Name: next.Name, Position: next.Position}
	}
}

// positionSortKey maps a position string to its sort value; 0 and
// non-numeric placeholders sort last.
func positionSortKey(position string) int {
	n, err := strconv.Atoi(position)
	if err != nil || n == 0 {
		return int(^uint(0) >> 1) // max int
	}
	return n
}
