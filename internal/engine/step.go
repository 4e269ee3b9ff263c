package engine

import "fmt"

// Failure reasons surfaced to the player. The set is fixed; the consuming
// layer shows these verbatim.
const (
	ReasonOutOfPath  = "ran out of path"
	ReasonJumpTooFar = "jump was too far"
	ReasonBadLanding = "landed on a bad tile"
	ReasonNoHazard   = "nothing to jump over, jumps must cross a gap or obstacle"
	ReasonExhausted  = "ran out of blocks before reaching the goal"
)

// apply computes the result of a single instruction from the given position.
// It returns the next position, whether the step failed, and the failure
// reason. The range check runs before any tile lookup so an out-of-range
// target never indexes the track.
//
// Move: advance one tile. Fails past the track end (position unchanged) or
// onto a blocking tile (position is the hazard, the character walks into it
// before the failure is recognized).
//
// Jump: cross exactly one blocking tile and land two ahead. Fails past the
// track end or over plain ground (position unchanged in both cases), or when
// the landing tile itself is blocking (position is the landing tile).
// Jumping over ground is disallowed: a jump is only valid directly before a
// hazard.
func apply(level Level, pos int, op Instruction) (next int, reason string, failed bool) {
	switch op {
	case OpMove:
		target := pos + 1
		if target >= len(level.Track) {
			return pos, ReasonOutOfPath, true
		}
		if tile := level.Track[target]; tile.Blocking() {
			return target, fmt.Sprintf("hit a %s, try jumping over it", tile), true
		}
		return target, "", false

	case OpJump:
		over := pos + 1
		landing := pos + 2
		if landing >= len(level.Track) {
			return pos, ReasonJumpTooFar, true
		}
		if !level.Track[over].Blocking() {
			return pos, ReasonNoHazard, true
		}
		if level.Track[landing].Blocking() {
			return landing, ReasonBadLanding, true
		}
		return landing, "", false

	default:
		// Unreachable for well-formed programs; the vocabulary is closed.
		return pos, fmt.Sprintf("unknown block %q", op), true
	}
}
