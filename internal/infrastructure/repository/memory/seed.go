package memory

import (
	"time"

	"github.com/riskibarqy/club-admin/internal/domain/club"
	"github.com/riskibarqy/club-admin/internal/domain/country"
	"github.com/riskibarqy/club-admin/internal/domain/player"
	"github.com/riskibarqy/club-admin/internal/domain/position"
)

const (
	ClubIDHarborCity = "club-harbor-city"
	ClubIDRiverton   = "club-riverton"

	CountryIDNetherlands = "country-nl"
	CountryIDBelgium     = "country-be"
	CountryIDGermany     = "country-de"

	PositionIDGoalkeeper = "pos-goalkeeper"
	PositionIDDefender   = "pos-defender"
	PositionIDMidfielder = "pos-midfielder"
	PositionIDForward    = "pos-forward"
)

func SeedClubs() []club.Club {
	return []club.Club{
		{ID: ClubIDHarborCity, Name: "Harbor City FC", Status: club.StatusActive},
		{ID: ClubIDRiverton, Name: "Riverton United", Status: club.StatusActive},
	}
}

func SeedCountries() []country.Country {
	return []country.Country{
		{ID: CountryIDNetherlands, Name: "Netherlands", Code: "NL"},
		{ID: CountryIDBelgium, Name: "Belgium", Code: "BE"},
		{ID: CountryIDGermany, Name: "Germany", Code: "DE"},
	}
}

func SeedNationalTeams() []country.NationalTeam {
	return []country.NationalTeam{
		{ID: "nt-nl-senior", CountryID: CountryIDNetherlands, Name: "Netherlands", AgeLevel: "senior"},
		{ID: "nt-nl-u21", CountryID: CountryIDNetherlands, Name: "Netherlands U21", AgeLevel: "u21"},
		{ID: "nt-be-senior", CountryID: CountryIDBelgium, Name: "Belgium", AgeLevel: "senior"},
		{ID: "nt-de-senior", CountryID: CountryIDGermany, Name: "Germany", AgeLevel: "senior"},
		{ID: "nt-de-u21", CountryID: CountryIDGermany, Name: "Germany U21", AgeLevel: "u21"},
	}
}

func SeedPositions() []position.Position {
	return []position.Position{
		{ID: PositionIDGoalkeeper, Name: "Goalkeeper", Category: "goalkeeper"},
		{ID: PositionIDDefender, Name: "Defender", Category: "defence"},
		{ID: PositionIDMidfielder, Name: "Midfielder", Category: "midfield"},
		{ID: PositionIDForward, Name: "Forward", Category: "attack"},
	}
}

// SeedPlayers returns a full matchday squad for both seed clubs: twelve
// players each, so a valid eleven-starter sheet always has a bench option.
func SeedPlayers() []player.Player {
	born := func(year, month, day int) time.Time {
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}
	spell := func(clubID string) player.ClubSpell {
		return player.ClubSpell{ClubID: clubID, From: born(2023, 7, 1)}
	}

	return []player.Player{
		{ID: "hc-gk-01", Name: "Jesse van Dam", DateOfBirth: born(1994, 3, 12), PositionID: PositionIDGoalkeeper, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDHarborCity), Rating: 71},
		{ID: "hc-def-01", Name: "Ruben Maes", DateOfBirth: born(1996, 7, 2), PositionID: PositionIDDefender, CountryID: CountryIDBelgium, CurrentClub: spell(ClubIDHarborCity), Rating: 69},
		{ID: "hc-def-02", Name: "Daan Vermeer", DateOfBirth: born(1998, 1, 25), PositionID: PositionIDDefender, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDHarborCity), Rating: 68},
		{ID: "hc-def-03", Name: "Luca Brandt", DateOfBirth: born(1997, 11, 8), PositionID: PositionIDDefender, CountryID: CountryIDGermany, CurrentClub: spell(ClubIDHarborCity), Rating: 70},
		{ID: "hc-def-04", Name: "Timo de Ridder", DateOfBirth: born(2000, 5, 19), PositionID: PositionIDDefender, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDHarborCity), Rating: 66},
		{ID: "hc-mid-01", Name: "Sven Hollander", DateOfBirth: born(1995, 9, 30), PositionID: PositionIDMidfielder, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDHarborCity), Rating: 73},
		{ID: "hc-mid-02", Name: "Milan Peeters", DateOfBirth: born(1999, 2, 14), PositionID: PositionIDMidfielder, CountryID: CountryIDBelgium, CurrentClub: spell(ClubIDHarborCity), Rating: 72},
		{ID: "hc-mid-03", Name: "Noah Schreuder", DateOfBirth: born(2001, 6, 7), PositionID: PositionIDMidfielder, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDHarborCity), Rating: 67},
		{ID: "hc-fwd-01", Name: "Kai Lindemann", DateOfBirth: born(1996, 12, 3), PositionID: PositionIDForward, CountryID: CountryIDGermany, CurrentClub: spell(ClubIDHarborCity), Rating: 74},
		{ID: "hc-fwd-02", Name: "Bram Koster", DateOfBirth: born(1998, 8, 21), PositionID: PositionIDForward, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDHarborCity), Rating: 70},
		{ID: "hc-fwd-03", Name: "Wout Smeets", DateOfBirth: born(2002, 4, 16), PositionID: PositionIDForward, CountryID: CountryIDBelgium, CurrentClub: spell(ClubIDHarborCity), Rating: 65},
		{ID: "hc-sub-01", Name: "Finn Jacobs", DateOfBirth: born(2003, 10, 9), PositionID: PositionIDMidfielder, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDHarborCity), Rating: 63},

		{ID: "rv-gk-01", Name: "Oscar Willems", DateOfBirth: born(1993, 5, 27), PositionID: PositionIDGoalkeeper, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDRiverton), Rating: 72},
		{ID: "rv-def-01", Name: "Jonas Keller", DateOfBirth: born(1995, 10, 11), PositionID: PositionIDDefender, CountryID: CountryIDGermany, CurrentClub: spell(ClubIDRiverton), Rating: 71},
		{ID: "rv-def-02", Name: "Stijn Baeten", DateOfBirth: born(1997, 3, 6), PositionID: PositionIDDefender, CountryID: CountryIDBelgium, CurrentClub: spell(ClubIDRiverton), Rating: 69},
		{ID: "rv-def-03", Name: "Thomas Vink", DateOfBirth: born(1999, 7, 23), PositionID: PositionIDDefender, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDRiverton), Rating: 67},
		{ID: "rv-def-04", Name: "Erik Bosman", DateOfBirth: born(2000, 1, 4), PositionID: PositionIDDefender, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDRiverton), Rating: 66},
		{ID: "rv-mid-01", Name: "Lars Mulder", DateOfBirth: born(1994, 11, 18), PositionID: PositionIDMidfielder, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDRiverton), Rating: 73},
		{ID: "rv-mid-02", Name: "Felix Wagner", DateOfBirth: born(1998, 6, 29), PositionID: PositionIDMidfielder, CountryID: CountryIDGermany, CurrentClub: spell(ClubIDRiverton), Rating: 70},
		{ID: "rv-mid-03", Name: "Arne Claes", DateOfBirth: born(2001, 9, 13), PositionID: PositionIDMidfielder, CountryID: CountryIDBelgium, CurrentClub: spell(ClubIDRiverton), Rating: 68},
		{ID: "rv-fwd-01", Name: "Joris Hendriks", DateOfBirth: born(1996, 2, 8), PositionID: PositionIDForward, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDRiverton), Rating: 75},
		{ID: "rv-fwd-02", Name: "Mats Dekker", DateOfBirth: born(1999, 12, 20), PositionID: PositionIDForward, CountryID: CountryIDNetherlands, CurrentClub: spell(ClubIDRiverton), Rating: 71},
		{ID: "rv-fwd-03", Name: "Nico Verhoeven", DateOfBirth: born(2002, 8, 2), PositionID: PositionIDForward, CountryID: CountryIDBelgium, CurrentClub: spell(ClubIDRiverton), Rating: 64},
		{ID: "rv-sub-01", Name: "Tobias Frank", DateOfBirth: born(2004, 4, 1), PositionID: PositionIDDefender, CountryID: CountryIDGermany, CurrentClub: spell(ClubIDRiverton), Rating: 62},
	}
}
