package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDuplicate             = errors.New("duplicate resource")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// FailedRatingUpdate identifies one starter whose rating-history append did
// not apply after the match itself was saved.
type FailedRatingUpdate struct {
	PlayerID string
	Side     string
	Err      error
}

// PartialPropagationError reports a match that was durably persisted while
// some of its starter rating updates failed. Callers reconcile or retry the
// listed players; they must not resubmit the match.
type PartialPropagationError struct {
	MatchID string
	Applied int
	Failed  []FailedRatingUpdate
}

func (e *PartialPropagationError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		ids = append(ids, f.PlayerID)
	}
	return fmt.Sprintf("match %s was saved but %d rating update(s) failed (applied %d): players [%s]",
		e.MatchID, len(e.Failed), e.Applied, strings.Join(ids, ", "))
}
