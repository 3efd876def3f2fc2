package f1

import "testing"

func TestComputeDriverCode(t *testing.T) {
	cases := []struct {
		name   string
		given  string
		family string
		want   string
	}{
		{"family name rules", "Max", "Verstappen", "VER"},
		{"short family name kept whole", "Guanyu", "Zhou", "ZHO"},
		{"two-letter family name", "Nyck", "de", "DE"},
		{"single-letter family falls back to initials", "Mister", "X", "MX"},
		{"missing given name", "", "Hamilton", "HAM"},
		{"missing family name", "Lewis", "", "LEW"},
		{"both missing", "", "", ""},
		{"short concatenation", "", "Yu", "YU"},
		{"accented family name sliced by rune", "Philippe", "Étancelin", "ÉTA"},
		{"accent on the third letter", "Maurice", "Trélago", "TRÉ"},
		{"accented missing-given fallback", "", "Ön", "ÖN"},
		{"accented initials", "Émile", "B", "ÉB"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := computeDriverCode(tc.given, tc.family); got != tc.want {
				t.Errorf("computeDriverCode(%q, %q) = %q, want %q", tc.given, tc.family, got, tc.want)
			}
		})
	}
}

func TestDriverCodePrefersUpstream(t *testing.T) {
	if got := driverCode("MSC", "Michael", "Schumacher"); got != "MSC" {
		t.Errorf("driverCode = %q, upstream code must win", got)
	}
	if got := driverCode("", "Michael", "Schumacher"); got != "SCH" {
		t.Errorf("driverCode = %q, want derived SCH", got)
	}
}

func TestDeriveDriverCodeMemoized(t *testing.T) {
	a := deriveDriverCode("Juan", "Fangio")
	b := deriveDriverCode("Juan", "Fangio")
	if a != b || a != "FAN" {
		t.Errorf("memoized derivation mismatch: %q vs %q", a, b)
	}
}

func TestParsePosition(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"1", 1, true},
		{"20", 20, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"R", 0, false},
		{"NC", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parsePosition(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("parsePosition(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestParsePoints(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"25", 25},
		{"12.5", 12.5},
		{"0", 0},
		{"", 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		if got := parsePoints(tc.in); got != tc.want {
			t.Errorf("parsePoints(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFullName(t *testing.T) {
	if got := fullName("Max", "Verstappen"); got != "Max Verstappen" {
		t.Errorf("fullName = %q", got)
	}
	if got := fullName("", "Verstappen"); got != "Verstappen" {
		t.Errorf("fullName with empty given = %q", got)
	}
	if got := fullName("", ""); got != "" {
		t.Errorf("fullName empty = %q", got)
	}
}
