package f1

import (
	"strconv"
	"strings"
	"sync"
)

// Normalization: "parse with defaults" constructors that turn raw
// upstream records into domain records. All defensive handling of
// missing or malformed fields lives here; a malformed record yields
// ok=false and the caller skips it without failing siblings.

// --------------------------------------------------------------------------
// Driver code derivation
// --------------------------------------------------------------------------

var (
	codeMu    sync.Mutex
	codeCache = map[[2]string]string{}
)

// deriveDriverCode builds a short code for drivers the upstream has no
// code for (pre-2000s entries, mostly). Pure; memoized per name pair.
func deriveDriverCode(givenName, familyName string) string {
	key := [2]string{givenName, familyName}
	codeMu.Lock()
	if code, ok := codeCache[key]; ok {
		codeMu.Unlock()
		return code
	}
	codeMu.Unlock()

	code := computeDriverCode(givenName, familyName)

	codeMu.Lock()
	codeCache[key] = code
	codeMu.Unlock()
	return code
}

func computeDriverCode(givenName, familyName string) string {
	// Slice runes, not bytes: accented names ("Étancelin", "Tréla")
	// would otherwise lose a letter or split a rune mid-sequence.
	given, family := []rune(givenName), []rune(familyName)

	if len(given) == 0 || len(family) == 0 {
		full := append(append([]rune{}, given...), family...)
		if len(full) == 0 {
			return ""
		}
		if len(full) > 3 {
			full = full[:3]
		}
		return strings.ToUpper(string(full))
	}

	if len(family) >= 2 {
		code := family
		if len(code) > 3 {
			code = code[:3]
		}
		return strings.ToUpper(string(code))
	}

	// Single-letter family name: fall back to initials.
	return strings.ToUpper(string(given[:1]) + string(family[:1]))
}

// driverCode returns the upstream code when present, derived otherwise.
func driverCode(code, givenName, familyName string) string {
	if code != "" {
		return code
	}
	return deriveDriverCode(givenName, familyName)
}

// --------------------------------------------------------------------------
// Scalar helpers
// --------------------------------------------------------------------------

// fullName joins the upstream name parts.
func fullName(givenName, familyName string) string {
	return strings.TrimSpace(givenName + " " + familyName)
}

// parsePosition returns the numeric finish position, ok=false for DNF
// statuses and tie placeholders ("NC", "R", "-", "E", ...).
func parsePosition(position string) (int, bool) {
	n, err := strconv.Atoi(position)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// parsePoints parses an upstream decimal-as-string points value,
// defaulting to 0 on anything unparseable.
func parsePoints(points string) float64 {
	f, err := strconv.ParseFloat(points, 64)
	if err != nil {
		return 0
	}
	return f
}

// orDefault substitutes a default for empty upstream strings.
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
