// Package bookingref derives human-readable sequential booking codes from
// event metadata and the set of already-issued references.
package bookingref

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain/models"
)

// Reference is a prefix plus a zero-padded sequence, e.g. MONF1-2024-0004.
type Reference struct {
	Prefix   string `json:"prefix"`
	Sequence string `json:"sequence"`
}

func (r Reference) String() string {
	return r.Prefix + r.Sequence
}

// venueCodes maps known Grand Prix / MotoGP venues to their short codes.
// Ordered: the first case-insensitive substring match of the event name
// wins, so longer matches that contain a shorter one ("spanish" contains
// "spa") must come before it.
var venueCodes = []struct {
	Match string
	Code  string
}{
	{"monaco", "MON"},
	{"monte carlo", "MON"},
	{"silverstone", "SIL"},
	{"british", "SIL"},
	{"barcelona", "BCN"},
	{"catalunya", "BCN"},
	{"spanish", "BCN"},
	{"spa", "SPA"},
	{"belgian", "SPA"},
	{"monza", "MNZ"},
	{"italian", "MNZ"},
	{"zandvoort", "ZAN"},
	{"dutch", "ZAN"},
	{"hungaroring", "HUN"},
	{"hungarian", "HUN"},
	{"red bull ring", "RBR"},
	{"austrian", "RBR"},
	{"singapore", "SIN"},
	{"suzuka", "SUZ"},
	{"japanese", "SUZ"},
	{"cota", "COT"},
	{"austin", "COT"},
	{"united states", "COT"},
	{"mexico", "MEX"},
	{"interlagos", "INT"},
	{"brazil", "INT"},
	{"sao paulo", "INT"},
	{"las vegas", "LVG"},
	{"abu dhabi", "ABU"},
	{"yas marina", "ABU"},
	{"bahrain", "BAH"},
	{"jeddah", "JED"},
	{"saudi", "JED"},
	{"melbourne", "MEL"},
	{"australian", "MEL"},
	{"imola", "IMO"},
	{"emilia", "IMO"},
	{"miami", "MIA"},
	{"montreal", "MTL"},
	{"canadian", "MTL"},
	{"baku", "BAK"},
	{"azerbaijan", "BAK"},
	{"qatar", "QAT"},
	{"losail", "QAT"},
	{"shanghai", "SHA"},
	{"chinese", "SHA"},
	{"mugello", "MUG"},
	{"assen", "ASS"},
	{"le mans", "LEM"},
	{"jerez", "JER"},
	{"sachsenring", "SAC"},
	{"phillip island", "PHI"},
	{"sepang", "SEP"},
	{"valencia", "VAL"},
	{"aragon", "ARA"},
	{"portimao", "POR"},
	{"portuguese", "POR"},
}

// VenueCode resolves the three-letter venue code from the event name.
// Unknown venues fall back to the first three letters of the first word.
func VenueCode(eventName string) string {
	lower := strings.ToLower(eventName)
	for _, v := range venueCodes {
		if strings.Contains(lower, v.Match) {
			return v.Code
		}
	}
	fields := strings.Fields(strings.TrimSpace(eventName))
	if len(fields) == 0 {
		return "GEN"
	}
	word := fields[0]
	if len(word) > 3 {
		word = word[:3]
	}
	return strings.ToUpper(word)
}

// SportCode classifies the event's sport field.
func SportCode(sport string) string {
	lower := strings.ToLower(sport)
	switch {
	case strings.Contains(lower, "formula"):
		return "F1"
	case strings.Contains(lower, "motogp"):
		return "MGP"
	default:
		return "GEN"
	}
}

// YearToken picks the first 4-digit token starting with "20" out of the
// event name, falling back to the current year.
func YearToken(eventName string, now time.Time) string {
	for _, f := range strings.Fields(eventName) {
		f = strings.Trim(f, "()[],.")
		if len(f) == 4 && strings.HasPrefix(f, "20") {
			if _, err := strconv.Atoi(f); err == nil {
				return f
			}
		}
	}
	return strconv.Itoa(now.Year())
}

// Prefix assembles the reference prefix for an event.
func Prefix(ev models.Event, now time.Time) string {
	return fmt.Sprintf("%s%s-%s-", VenueCode(ev.Name), SportCode(ev.Sport), YearToken(ev.Name, now))
}

// NextSequence scans existing references sharing the prefix, extracts the
// numeric suffix after the last dash, and returns max+1 zero-padded to four
// digits. No matches yields "0001".
func NextSequence(prefix string, existing []string) string {
	max := 0
	for _, ref := range existing {
		ref = strings.TrimSpace(ref)
		if prefix == "" || !strings.HasPrefix(ref, prefix) {
			continue
		}
		idx := strings.LastIndex(ref, "-")
		if idx < 0 || idx+1 >= len(ref) {
			continue
		}
		n, err := strconv.Atoi(ref[idx+1:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%04d", max+1)
}

// Generate produces the next reference for an event given all known refs.
func Generate(ev models.Event, existing []string, now time.Time) Reference {
	prefix := Prefix(ev, now)
	return Reference{
		Prefix:   prefix,
		Sequence: NextSequence(prefix, existing),
	}
}

// Fallback is issued when existing references cannot be fetched; booking
// creation must never block on the reference lookup.
func Fallback() Reference {
	return Reference{Prefix: "", Sequence: "0001"}
}
