package country

// Country is a FIFA member country players can be affiliated with.
type Country struct {
	ID   string
	Name string
	Code string
}

// NationalTeam is one selectable national side of a country, for example the
// senior squad or an age-group squad.
type NationalTeam struct {
	ID        string
	CountryID string
	Name      string
	AgeLevel  string
}
