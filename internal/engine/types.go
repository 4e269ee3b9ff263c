// Package engine implements the deterministic execution engine for BlockHop.
// It replays an ordered list of movement blocks against a one-dimensional
// track and records every step. The package is UI-agnostic, does no I/O and
// never reports an outcome as an error: every result is a value in the trace.
package engine

import (
	"encoding/json"
	"fmt"
)

// Tile is one cell of a level track.
type Tile int

const (
	Ground   Tile = iota // Traversable, can be landed on
	Gap                  // Blocking, can only be jumped over
	Obstacle             // Blocking, can only be jumped over
)

// String returns the string representation of a tile kind.
func (t Tile) String() string {
	switch t {
	case Ground:
		return "ground"
	case Gap:
		return "gap"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Blocking reports whether a character cannot stand on this tile.
func (t Tile) Blocking() bool {
	return t == Gap || t == Obstacle
}

// ParseTile parses a tile kind from its string form.
func ParseTile(s string) (Tile, bool) {
	switch s {
	case "ground":
		return Ground, true
	case "gap":
		return Gap, true
	case "obstacle":
		return Obstacle, true
	default:
		return Ground, false
	}
}

// Instruction is one block in a player's program. The vocabulary is closed:
// only Move and Jump are valid inside a program. OpNone is reserved for the
// synthetic step appended when a program runs out before reaching the goal.
type Instruction int

const (
	OpNone Instruction = iota
	OpMove             // Advance by one track position
	OpJump             // Cross exactly one blocking tile, landing two ahead
)

// String returns the string representation of an instruction.
func (op Instruction) String() string {
	switch op {
	case OpMove:
		return "move"
	case OpJump:
		return "jump"
	default:
		return "none"
	}
}

// ParseInstruction parses an instruction from its string form.
func ParseInstruction(s string) (Instruction, bool) {
	switch s {
	case "move":
		return OpMove, true
	case "jump":
		return OpJump, true
	default:
		return OpNone, false
	}
}

// MarshalJSON encodes the instruction as its string form.
func (op Instruction) MarshalJSON() ([]byte, error) {
	return json.Marshal(op.String())
}

// UnmarshalJSON decodes an instruction from its string form.
func (op *Instruction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseInstruction(s)
	if !ok {
		return fmt.Errorf("engine: unknown block %q", s)
	}
	*op = parsed
	return nil
}

// Program is an ordered list of instructions. Order is significant;
// execution is strictly sequential.
type Program []Instruction

// Level is an immutable track with a start and a goal position, both valid
// track indices. Levels are built and validated by the levels package, the
// engine trusts them as given.
type Level struct {
	ID    string
	Name  string
	Track []Tile
	Start int
	Goal  int
}

// Status is the verdict attached to a single execution step.
type Status int

const (
	StatusRunning Status = iota
	StatusSuccess
	StatusFailed
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status from its string form.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "running":
		*s = StatusRunning
	case "success":
		*s = StatusSuccess
	case "failed":
		*s = StatusFailed
	default:
		return fmt.Errorf("engine: unknown status %q", str)
	}
	return nil
}

// Step is one immutable record in a trace: which block ran, where the
// character ended up and how the step resolved. Reason is set only when
// Status is StatusFailed.
type Step struct {
	Index    int         `json:"index"`
	Op       Instruction `json:"op"`
	Position int         `json:"position"`
	Status   Status      `json:"status"`
	Reason   string      `json:"reason,omitempty"`
}

// Trace is the ordered log of steps for one run of one program against one
// level. It is fully determined by its inputs: identical (Level, Program)
// pairs always produce identical traces.
type Trace []Step

// Terminal returns the last step of the trace and true when that step ended
// the run. An empty trace has no terminal step.
func (tr Trace) Terminal() (Step, bool) {
	if len(tr) == 0 {
		return Step{}, false
	}
	last := tr[len(tr)-1]
	return last, last.Status != StatusRunning
}

// Succeeded reports whether the trace ended with the goal reached.
func (tr Trace) Succeeded() bool {
	last, ok := tr.Terminal()
	return ok && last.Status == StatusSuccess
}
