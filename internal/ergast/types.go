package ergast

// Raw response shapes for the Ergast / Jolpica statistics API.
//
// Every endpoint wraps its table in the MRData envelope:
//
//	{"MRData": {"StandingsTable": {...}}}
//
// All fields are optional in practice — historical seasons omit codes,
// permanent numbers, race times, and sometimes whole tables. Consumers
// must treat zero values as "absent", never as an error.

type payload struct {
	MRData MRData `json:"MRData"`
}

// MRData is the common envelope. Exactly one table is populated per
// endpoint; the rest stay nil.
type MRData struct {
	Limit  string `json:"limit"`
	Offset string `json:"offset"`
	Total  string `json:"total"`

	SeasonTable    *SeasonTable    `json:"SeasonTable,omitempty"`
	DriverTable    *DriverTable    `json:"DriverTable,omitempty"`
	RaceTable      *RaceTable      `json:"RaceTable,omitempty"`
	StandingsTable *StandingsTable `json:"StandingsTable,omitempty"`
}

type SeasonTable struct {
	Seasons []RawSeason `json:"Seasons"`
}

type RawSeason struct {
	Season string `json:"season"`
	URL    string `json:"url"`
}

type DriverTable struct {
	Season  string      `json:"season"`
	Drivers []RawDriver `json:"Drivers"`
}

type RawDriver struct {
	DriverID        string `json:"driverId"`
	PermanentNumber string `json:"permanentNumber"`
	Code            string `json:"code"`
	URL             string `json:"url"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Nationality     string `json:"nationality"`
}

type RawConstructor struct {
	ConstructorID string `json:"constructorId"`
	URL           string `json:"url"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality"`
}

type RaceTable struct {
	Season string    `json:"season"`
	Round  string    `json:"round"`
	Races  []RawRace `json:"Races"`
}

type RawRace struct {
	Season   string      `json:"season"`
	Round    string      `json:"round"`
	URL      string      `json:"url"`
	RaceName string      `json:"raceName"`
	Circuit  RawCircuit  `json:"Circuit"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Results  []RawResult `json:"Results"`
}

type RawCircuit struct {
	CircuitID   string      `json:"circuitId"`
	URL         string      `json:"url"`
	CircuitName string      `json:"circuitName"`
	Location    RawLocation `json:"Location"`
}

type RawLocation struct {
	Lat      string `json:"lat"`
	Long     string `json:"long"`
	Locality string `json:"locality"`
	Country  string `json:"country"`
}

type RawResult struct {
	Number       string          `json:"number"`
	Position     string          `json:"position"`
	PositionText string          `json:"positionText"`
	Points       string          `json:"points"`
	Driver       RawDriver       `json:"Driver"`
	Constructor  RawConstructor  `json:"Constructor"`
	Grid         string          `json:"grid"`
	Laps         string          `json:"laps"`
	Status       string          `json:"status"`
	Time         *RawResultTime  `json:"Time,omitempty"`
	FastestLap   *RawFastestLap  `json:"FastestLap,omitempty"`
}

type RawResultTime struct {
	Millis string `json:"millis"`
	Time   string `json:"time"`
}

type RawFastestLap struct {
	Rank string         `json:"rank"`
	Lap  string         `json:"lap"`
	Time *RawResultTime `json:"Time,omitempty"`
}

type StandingsTable struct {
	Season         string          `json:"season"`
	StandingsLists []StandingsList `json:"StandingsLists"`
}

type StandingsList struct {
	Season               string                   `json:"season"`
	Round                string                   `json:"round"`
	DriverStandings      []RawDriverStanding      `json:"DriverStandings"`
	ConstructorStandings []RawConstructorStanding `json:"ConstructorStandings"`
}

type RawDriverStanding struct {
	Position     string           `json:"position"`
	PositionText string           `json:"positionText"`
	Points       string           `json:"points"`
	Wins         string           `json:"wins"`
	Driver       RawDriver        `json:"Driver"`
	Constructors []RawConstructor `json:"Constructors"`
}

type RawConstructorStanding struct {
	Position     string         `json:"position"`
	PositionText string         `json:"positionText"`
	Points       string         `json:"points"`
	Wins         string         `json:"wins"`
	Constructor  RawConstructor `json:"Constructor"`
}
