package club

import "fmt"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Club is a member organization. The match core only ever reads ID and Name.
type Club struct {
	ID     string
	Name   string
	Status Status
}

func (c Club) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("club id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if c.Status != StatusActive && c.Status != StatusInactive {
		return fmt.Errorf("invalid club status: %q", c.Status)
	}
	return nil
}
