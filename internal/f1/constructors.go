package f1

// constructorLineage maps historical upstream team names onto the
// team's current identity. F1 teams rebrand with ownership and sponsor
// changes while remaining the same entry; the upstream reports whatever
// name was current in the requested season. The table encodes real
// team-identity history and is maintained as data, not derived.
//
// Names absent from the table pass through unchanged, which also covers
// every canonical value, so normalization is idempotent.
var constructorLineage = map[string]string{
	// Enstone: Toleman -> Benetton -> Renault -> Lotus -> Alpine
	"Toleman":  "Alpine F1 Team",
	"Benetton": "Alpine F1 Team",
	"Renault":  "Alpine F1 Team",
	"Lotus F1": "Alpine F1 Team",
	"Lotus":    "Alpine F1 Team",

	// Silverstone: Jordan -> Midland -> Spyker -> Force India -> Racing Point -> Aston Martin
	"Jordan":       "Aston Martin",
	"Midland":      "Aston Martin",
	"MF1":          "Aston Martin",
	"Spyker":       "Aston Martin",
	"Spyker MF1":   "Aston Martin",
	"Force India":  "Aston Martin",
	"Racing Point": "Aston Martin",

	// Brackley: Tyrrell -> BAR -> Honda -> Brawn -> Mercedes
	"Tyrrell": "Mercedes",
	"BAR":     "Mercedes",
	"Honda":   "Mercedes",
	"Brawn":   "Mercedes",

	// Faenza: Minardi -> Toro Rosso -> AlphaTauri -> RB
	"Minardi":    "RB F1 Team",
	"Toro Rosso": "RB F1 Team",
	"AlphaTauri": "RB F1 Team",

	// Hinwil: Sauber -> BMW Sauber -> Alfa Romeo -> Sauber
	"BMW Sauber": "Sauber",
	"Alfa Romeo": "Sauber",

	// Milton Keynes: Stewart -> Jaguar -> Red Bull
	"Stewart": "Red Bull",
	"Jaguar":  "Red Bull",
}

// NormalizeConstructor maps a raw upstream constructor name onto the
// team's canonical current identity. Unknown names pass through.
func NormalizeConstructor(name string) string {
	if canonical, ok := constructorLineage[name]; ok {
		return canonical
	}
	return name
}
