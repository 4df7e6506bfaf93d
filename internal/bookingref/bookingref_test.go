package bookingref

import (
	"testing"
	"time"

	"backoffice/internal/domain/models"
)

func TestVenueCode(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Monaco Grand Prix 2024", "MON"},
		{"British Grand Prix (Silverstone)", "SIL"},
		{"Spanish Grand Prix 2024", "BCN"},
		{"Circuit de Barcelona-Catalunya", "BCN"},
		{"Belgian Grand Prix (Spa-Francorchamps)", "SPA"},
		{"Italian GP Monza", "MNZ"},
		{"Abu Dhabi Grand Prix", "ABU"},
		{"Mugello MotoGP", "MUG"},
		{"Weirdville Cup", "WEI"},
		{"", "GEN"},
	}
	for _, c := range cases {
		if got := VenueCode(c.name); got != c.want {
			t.Errorf("VenueCode(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestSportCode(t *testing.T) {
	if got := SportCode("Formula 1"); got != "F1" {
		t.Errorf("SportCode(Formula 1) = %q, want F1", got)
	}
	if got := SportCode("MotoGP"); got != "MGP" {
		t.Errorf("SportCode(MotoGP) = %q, want MGP", got)
	}
	if got := SportCode("rallycross"); got != "GEN" {
		t.Errorf("SportCode(rallycross) = %q, want GEN", got)
	}
}

func TestYearToken(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := YearToken("Monaco Grand Prix 2024", now); got != "2024" {
		t.Errorf("YearToken = %q, want 2024", got)
	}
	if got := YearToken("Monaco Grand Prix (2025)", now); got != "2025" {
		t.Errorf("parenthesised YearToken = %q, want 2025", got)
	}
	if got := YearToken("Monaco Grand Prix", now); got != "2026" {
		t.Errorf("fallback YearToken = %q, want 2026", got)
	}
}

func TestGenerateNextSequence(t *testing.T) {
	ev := models.Event{Name: "Monaco Grand Prix 2024", Sport: "Formula 1"}
	existing := []string{
		"MONF1-2024-0001",
		"MONF1-2024-0003",
		"SILF1-2024-0009", // different prefix, ignored
		"MONF1-2024-junk", // unparseable suffix, ignored
	}
	ref := Generate(ev, existing, time.Now())
	if ref.Prefix != "MONF1-2024-" {
		t.Errorf("Prefix = %q, want MONF1-2024-", ref.Prefix)
	}
	if ref.Sequence != "0004" {
		t.Errorf("Sequence = %q, want 0004", ref.Sequence)
	}
	if ref.String() != "MONF1-2024-0004" {
		t.Errorf("String() = %q, want MONF1-2024-0004", ref.String())
	}
}

func TestGenerateFirstReference(t *testing.T) {
	ev := models.Event{Name: "Japanese Grand Prix 2025", Sport: "Formula 1"}
	ref := Generate(ev, nil, time.Now())
	if ref.String() != "SUZF1-2025-0001" {
		t.Errorf("first reference = %q, want SUZF1-2025-0001", ref.String())
	}
}

func TestFallbackReference(t *testing.T) {
	ref := Fallback()
	if ref.String() != "0001" {
		t.Errorf("fallback reference = %q, want 0001", ref.String())
	}
}
