// Package f1 is the aggregation layer: it turns raw upstream payloads
// into flat domain records and derived views (standings, cumulative
// points, career totals, driver search).
//
// Every exported method is a pure query over the upstream API plus the
// shared cache. Expected-absent data (unknown driver, empty season)
// comes back as an empty collection or nil, never as an error; errors
// are reserved for genuine upstream faults and even those degrade to
// empty results at this layer after logging.
package f1

import (
	"log/slog"
	"time"

	"github.com/f1nsight/f1nsight-api/internal/cache"
	"github.com/f1nsight/f1nsight-api/internal/ergast"
)

// Service computes derived statistics views over the upstream API.
type Service struct {
	client *ergast.Client
	cache  *cache.Cache
	logger *slog.Logger
	now    func() time.Time // injectable for completed-race cutoff tests
}

// NewService creates the aggregation service.
func NewService(client *ergast.Client, c *cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		cache:  c,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces the wall clock. Test hook.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// CurrentSeason returns the default season label (the current year).
func (s *Service) CurrentSeason() string {
	return s.now().Format("2006")
}

// --------------------------------------------------------------------------
// Domain records
// --------------------------------------------------------------------------

// DriverStanding is one row of the driver championship table. Points are
// kept as the upstream decimal-as-string; half points (1950s shared
// drives, 2021 Spa) do not survive integer parsing.
type DriverStanding struct {
	Position    string `json:"position"`
	Points      string `json:"points"`
	Wins        string `json:"wins"`
	Driver      string `json:"driver"`
	DriverID    string `json:"driverId"`
	Constructor string `json:"constructor"`
}

// ConstructorStanding is one row of the constructor championship table.
// Constructor carries the normalized (current-identity) team name.
type ConstructorStanding struct {
	Position    string `json:"position"`
	Points      string `json:"points"`
	Wins        string `json:"wins"`
	Constructor string `json:"constructor"`
}

// Driver is a roster entry with its season standing attached. Standing
// fields hold explicit zero placeholders when the driver has no standing
// for the season.
type Driver struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	DateOfBirth string `json:"dateOfBirth"`
	WikiURL     string `json:"wikiUrl"`
	Code        string `json:"code"`
	Number      string `json:"number"`
	Position    string `json:"position"`
	Points      string `json:"points"`
	Wins        string `json:"wins"`
	Constructor string `json:"constructor"`
}

// Race is one calendar entry. Round is 1-based and season-scoped; its
// integer value is the chronological sort key.
type Race struct {
	Season      string `json:"season"`
	Round       string `json:"round"`
	RaceName    string `json:"raceName"`
	CircuitName string `json:"circuitName"`
	CircuitID   string `json:"circuitId"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Locality    string `json:"locality"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	URL         string `json:"url"`
}

// RaceResultRow is one classified finisher (or non-finisher) of a race.
type RaceResultRow struct {
	Position        string `json:"position"`
	DriverName      string `json:"driverName"`
	DriverID        string `json:"driverId"`
	DriverCode      string `json:"driverCode"`
	DriverNumber    string `json:"driverNumber"`
	ConstructorName string `json:"constructorName"`
	ConstructorID   string `json:"constructorId"`
	Grid            string `json:"grid"`
	Laps            string `json:"laps"`
	Status          string `json:"status"`
	Points          string `json:"points"`
	Time            string `json:"time"`
	FastestLap      string `json:"fastestLap"`
	FastestLapTime  string `json:"fastestLapTime"`
}

// RaceDetail is a race with its results. For races that have not run yet
// Results is empty and IsFutureRace is set.
type RaceDetail struct {
	Race
	Results      []RaceResultRow `json:"results"`
	IsFutureRace bool            `json:"isFutureRace"`
	RaceDateTime string          `json:"raceDateTime,omitempty"`
}

// DriverRaceResult is one race from a driver's season, flattened.
type DriverRaceResult struct {
	Round       string `json:"round"`
	RaceName    string `json:"raceName"`
	CircuitName string `json:"circuitName"`
	Date        string `json:"date"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Grid        string `json:"grid"`
	Position    string `json:"position"`
	Points      string `json:"points"`
	Status      string `json:"status"`
	Constructor string `json:"constructor"`
}

// CareerStats is the derived full-career aggregate for a driver.
// BestFinish and the season bounds are "N/A" when no numeric data exists.
type CareerStats struct {
	TotalRaces   int    `json:"totalRaces"`
	TotalWins    int    `json:"totalWins"`
	TotalPodiums int    `json:"totalPodiums"`
	BestFinish   string `json:"bestFinish"`
	FirstSeason  string `json:"firstRace"`
	LastSeason   string `json:"lastRace"`
}

// SeasonStanding is a driver's championship snapshot for one season.
type SeasonStanding struct {
	Position    string `json:"position"`
	Points      string `json:"points"`
	Wins        string `json:"wins"`
	Constructor string `json:"constructor"`
}

// DriverLink points at a neighbouring driver in the standings.
type DriverLink struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// Profile is the full driver profile view.
type Profile struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	GivenName   string                    `json:"givenName"`
	FamilyName  string                    `json:"familyName"`
	Nationality string                    `json:"nationality"`
	DateOfBirth string                    `json:"dateOfBirth"`
	WikiURL     string                    `json:"wikiUrl"`
	Code        string                    `json:"code"`
	Number      string                    `json:"number"`
	Seasons     map[string]SeasonStanding `json:"seasons"`
	PrevDriver  *DriverLink               `json:"prev_driver,omitempty"`
	NextDriver  *DriverLink               `json:"next_driver,omitempty"`
	CareerStats *CareerStats              `json:"careerStats,omitempty"`
}

// Progression is a driver's cumulative points across a season's
// completed races, one entry per race in round order.
type Progression struct {
	Labels []string  `json:"races"`
	Points []float64 `json:"points"`
}

// Comparison aligns two drivers' progressions on a shared race axis.
type Comparison struct {
	Season  string    `json:"season"`
	Races   []string  `json:"races"`
	DriverA string    `json:"driverA"`
	DriverB string    `json:"driverB"`
	PointsA []float64 `json:"pointsA"`
	PointsB []float64 `json:"pointsB"`
}
