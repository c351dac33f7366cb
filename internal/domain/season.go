package domain

import (
	"fmt"
	"strings"
)

// Season is a calendar season or the Greenhouse pseudo-season.
// Greenhouse means "all seasons" and has no calendar position.
type Season int

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonFall
	SeasonWinter
	SeasonGreenhouse
)

// CalendarSeasons lists the calendar seasons in canonical order.
var CalendarSeasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

var seasonNames = map[Season]string{
	SeasonSpring:     SeasonNameSpring,
	SeasonSummer:     SeasonNameSummer,
	SeasonFall:       SeasonNameFall,
	SeasonWinter:     SeasonNameWinter,
	SeasonGreenhouse: SeasonNameGreenhouse,
}

func (s Season) String() string {
	if name, ok := seasonNames[s]; ok {
		return name
	}
	return fmt.Sprintf("season(%d)", int(s))
}

// IsCalendar reports whether s is one of the four calendar seasons.
func (s Season) IsCalendar() bool {
	return s >= SeasonSpring && s <= SeasonWinter
}

// CalendarIndex returns the 0-based position of s in the calendar.
// Greenhouse and out-of-range values have no calendar mapping.
func (s Season) CalendarIndex() (int, error) {
	if !s.IsCalendar() {
		return 0, fmt.Errorf("%w: %s", ErrUnmappedSeason, s)
	}
	return int(s), nil
}

// MarshalText encodes the season by name.
func (s Season) MarshalText() ([]byte, error) {
	name, ok := seasonNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnmappedSeason, int(s))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a season name, case-insensitively.
func (s *Season) UnmarshalText(text []byte) error {
	parsed, err := ParseSeason(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeason parses a season name. "greenhouse" is accepted.
func ParseSeason(name string) (Season, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for season, n := range seasonNames {
		if n == normalized {
			return season, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnmappedSeason, name)
}

// ParseCalendarSeason parses a name that must denote a calendar season.
func ParseCalendarSeason(name string) (Season, error) {
	season, err := ParseSeason(name)
	if err != nil {
		return 0, err
	}
	if _, err := season.CalendarIndex(); err != nil {
		return 0, err
	}
	return season, nil
}

// SeasonSet is the set of calendar seasons a plant can grow in.
type SeasonSet uint8

// AllSeasons is the sentinel set for plants that grow year-round.
const AllSeasons SeasonSet = 1<<SeasonSpring | 1<<SeasonSummer | 1<<SeasonFall | 1<<SeasonWinter

// NewSeasonSet builds a set from calendar seasons.
func NewSeasonSet(seasons ...Season) (SeasonSet, error) {
	var set SeasonSet
	for _, s := range seasons {
		if _, err := s.CalendarIndex(); err != nil {
			return 0, err
		}
		set |= 1 << s
	}
	return set, nil
}

// MustSeasonSet is NewSeasonSet for static tables; it panics on Greenhouse.
func MustSeasonSet(seasons ...Season) SeasonSet {
	set, err := NewSeasonSet(seasons...)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether the calendar season s is in the set.
// Greenhouse is never a member.
func (ss SeasonSet) Contains(s Season) bool {
	if !s.IsCalendar() {
		return false
	}
	return ss&(1<<s) != 0
}

// Len returns the number of seasons in the set.
func (ss SeasonSet) Len() int {
	n := 0
	for _, s := range CalendarSeasons {
		if ss.Contains(s) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no season is present.
func (ss SeasonSet) IsEmpty() bool {
	return ss&AllSeasons == 0
}

// Seasons returns the members in calendar order.
func (ss SeasonSet) Seasons() []Season {
	out := make([]Season, 0, 4)
	for _, s := range CalendarSeasons {
		if ss.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}

func (ss SeasonSet) String() string {
	if ss&AllSeasons == AllSeasons {
		return "all"
	}
	names := make([]string, 0, 4)
	for _, s := range ss.Seasons() {
		names = append(names, s.String())
	}
	return strings.Join(names, ",")
}
