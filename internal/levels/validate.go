package levels

import (
	"fmt"

	"github.com/vovakirdan/blockhop/internal/engine"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the level invariants the engine relies on:
//   - the track is non-empty,
//   - start is a valid track index,
//   - goal is within the track and at or past start,
//   - a program completing the level exists.
//
// The engine itself performs no validation; everything it receives must have
// passed this check.
func Validate(level engine.Level) error {
	if level.ID == "" {
		return ValidationError{
			Code:    "MISSING_ID",
			Message: "level has no id",
		}
	}

	if len(level.Track) == 0 {
		return ValidationError{
			Code:    "EMPTY_TRACK",
			Message: "level track has no tiles",
		}
	}

	if level.Start < 0 || level.Start >= len(level.Track) {
		return ValidationError{
			Code:    "BAD_START",
			Message: fmt.Sprintf("start %d outside track of %d tiles", level.Start, len(level.Track)),
		}
	}

	if level.Goal < level.Start || level.Goal >= len(level.Track) {
		return ValidationError{
			Code:    "BAD_GOAL",
			Message: fmt.Sprintf("goal %d must lie between start %d and the last tile %d", level.Goal, level.Start, len(level.Track)-1),
		}
	}

	if level.Track[level.Start].Blocking() {
		return ValidationError{
			Code:    "BAD_START",
			Message: fmt.Sprintf("start %d is on a %s tile", level.Start, level.Track[level.Start]),
		}
	}

	if level.Track[level.Goal].Blocking() {
		return ValidationError{
			Code:    "BAD_GOAL",
			Message: fmt.Sprintf("goal %d is on a %s tile", level.Goal, level.Track[level.Goal]),
		}
	}

	if _, ok := engine.Solve(level); !ok {
		return ValidationError{
			Code:    "NOT_SOLVABLE",
			Message: "no block program can reach the goal",
		}
	}

	return nil
}
