package f1

// countryCodes maps the country names the upstream uses (including
// regional Grand Prix aliases like "Emilia Romagna" and city names like
// "Miami") to ISO 3166-1 alpha-2 codes for flag display.
var countryCodes = map[string]string{
	"Abu Dhabi":                "ae",
	"Argentina":                "ar",
	"Australia":                "au",
	"Austria":                  "at",
	"Azerbaijan":               "az",
	"Bahrain":                  "bh",
	"Belgium":                  "be",
	"Brazil":                   "br",
	"Canada":                   "ca",
	"China":                    "cn",
	"France":                   "fr",
	"Germany":                  "de",
	"Hungary":                  "hu",
	"India":                    "in",
	"Italy":                    "it",
	"Japan":                    "jp",
	"Korea":                    "kr",
	"Malaysia":                 "my",
	"Mexico":                   "mx",
	"Monaco":                   "mc",
	"Morocco":                  "ma",
	"Netherlands":              "nl",
	"Portugal":                 "pt",
	"Qatar":                    "qa",
	"Russia":                   "ru",
	"Saudi Arabia":             "sa",
	"Singapore":                "sg",
	"South Africa":             "za",
	"Spain":                    "es",
	"Sweden":                   "se",
	"Switzerland":              "ch",
	"Turkey":                   "tr",
	"UK":                       "gb",
	"United Kingdom":           "gb",
	"Great Britain":            "gb",
	"USA":                      "us",
	"United States":            "us",
	"Vietnam":                  "vn",
	"Emilia Romagna":           "it",
	"Styria":                   "at",
	"Tuscany":                  "it",
	"Miami":                    "us",
	"Las Vegas":                "us",
	"Sakhir":                   "bh",
	"Europe":                   "eu",
	"San Marino":               "sm",
	"UAE":                      "ae",
	"United Arab Emirates":     "ae",
	"Czech Republic":           "cz",
	"Czechoslovakia":           "cz",
	"Finland":                  "fi",
	"Ireland":                  "ie",
	"New Zealand":              "nz",
	"Poland":                   "pl",
	"United States of America": "us",
	"America":                  "us",
	"Denmark":                  "dk",
	"Australia/Pacific":        "au",
	"Catalunya":                "es",
	"Imola":                    "it",
	"Zandvoort":                "nl",
	"Monza":                    "it",
	"Silverstone":              "gb",
}

// CountryCode converts an upstream country name to its ISO 3166-1
// alpha-2 code. Unknown names return "" so templates render without a
// flag rather than failing.
func CountryCode(countryName string) string {
	return countryCodes[countryName]
}
