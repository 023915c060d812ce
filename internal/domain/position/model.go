package position

// Position is a playing position players are registered under.
type Position struct {
	ID       string
	Name     string
	Category string
}
