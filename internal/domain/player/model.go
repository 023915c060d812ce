package player

import (
	"fmt"
	"math"
	"time"
)

type RatingEntryType string

const (
	// RatingEntryMatch entries are produced by the match rating engine and
	// carry the originating match ID.
	RatingEntryMatch RatingEntryType = "match"
	// RatingEntryAdjustment entries are manual corrections with no match
	// back-reference.
	RatingEntryAdjustment RatingEntryType = "adjustment"
)

// RatingEntry is one rating-affecting event. Change stores the signed delta
// applied by the event, never an absolute rating; fold the history with
// AbsoluteRating when a display value is needed.
type RatingEntry struct {
	Date    time.Time
	Change  float64
	Type    RatingEntryType
	MatchID string
}

func (e RatingEntry) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("rating entry date is required")
	}
	switch e.Type {
	case RatingEntryMatch:
		if e.MatchID == "" {
			return fmt.Errorf("rating entry of type %q requires a match id", e.Type)
		}
	case RatingEntryAdjustment:
		if e.MatchID != "" {
			return fmt.Errorf("rating entry of type %q must not reference a match", e.Type)
		}
	default:
		return fmt.Errorf("invalid rating entry type: %q", e.Type)
	}
	return nil
}

// ClubSpell is a stint at one club. A zero To means the spell is open.
type ClubSpell struct {
	ClubID string
	From   time.Time
	To     time.Time
}

// NationalTeamSpell is a stint with a national team.
type NationalTeamSpell struct {
	TeamID string
	From   time.Time
	To     time.Time
}

// Player is an athlete registered with the administration. RatingHistory is
// append-only: the rating engine and manual adjustments only ever add entries.
type Player struct {
	ID            string
	Name          string
	DateOfBirth   time.Time
	PositionID    string
	CountryID     string
	CurrentClub   ClubSpell
	PreviousClubs []ClubSpell
	NationalTeams []NationalTeamSpell
	Rating        float64
	RatingHistory []RatingEntry
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("player date of birth is required")
	}
	if p.PositionID == "" {
		return fmt.Errorf("player position is required")
	}
	if p.CountryID == "" {
		return fmt.Errorf("player country is required")
	}
	return nil
}

// AbsoluteRating projects the baseline rating plus every recorded change into
// one scalar, rounded to two decimals.
func (p Player) AbsoluteRating() float64 {
	total := p.Rating
	for _, entry := range p.RatingHistory {
		total += entry.Change
	}
	return math.Round(total*100) / 100
}
