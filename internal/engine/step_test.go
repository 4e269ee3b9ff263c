package engine

import (
	"strings"
	"testing"
)

// track builds a tile track from a compact string: '.' ground, '~' gap,
// '^' obstacle.
func track(s string) []Tile {
	tiles := make([]Tile, 0, len(s))
	for _, r := range s {
		switch r {
		case '~':
			tiles = append(tiles, Gap)
		case '^':
			tiles = append(tiles, Obstacle)
		default:
			tiles = append(tiles, Ground)
		}
	}
	return tiles
}

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name       string
		track      string
		pos        int
		wantPos    int
		wantFailed bool
		wantReason string
	}{
		{"onto ground", "....", 0, 1, false, ""},
		{"onto last tile", "....", 2, 3, false, ""},
		{"past track end", "....", 3, 3, true, ReasonOutOfPath},
		{"into gap", "..~.", 1, 2, true, "hit a gap, try jumping over it"},
		{"into obstacle", ".^..", 0, 1, true, "hit a obstacle, try jumping over it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := Level{Track: track(tt.track)}
			pos, reason, failed := apply(level, tt.pos, OpMove)

			if pos != tt.wantPos {
				t.Errorf("position = %d, want %d", pos, tt.wantPos)
			}
			if failed != tt.wantFailed {
				t.Errorf("failed = %v, want %v", failed, tt.wantFailed)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestApplyJump(t *testing.T) {
	tests := []struct {
		name       string
		track      string
		pos        int
		wantPos    int
		wantFailed bool
		wantReason string
	}{
		{"over gap", ".~..", 0, 2, false, ""},
		{"over obstacle", ".^..", 0, 2, false, ""},
		{"landing past track end", "....", 2, 2, true, ReasonJumpTooFar},
		{"over plain ground", "....", 0, 0, true, ReasonNoHazard},
		{"landing on gap", ".^~.", 0, 2, true, ReasonBadLanding},
		{"landing on obstacle", ".~^.", 0, 2, true, ReasonBadLanding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := Level{Track: track(tt.track)}
			pos, reason, failed := apply(level, tt.pos, OpJump)

			if pos != tt.wantPos {
				t.Errorf("position = %d, want %d", pos, tt.wantPos)
			}
			if failed != tt.wantFailed {
				t.Errorf("failed = %v, want %v", failed, tt.wantFailed)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestApplyRangeCheckBeforeTileLookup(t *testing.T) {
	// A move from the last tile and a jump from the second-to-last tile must
	// short-circuit on the range check and never index the track.
	level := Level{Track: track("..")}

	if pos, _, failed := apply(level, 1, OpMove); !failed || pos != 1 {
		t.Errorf("move off end: pos=%d failed=%v, want pos=1 failed=true", pos, failed)
	}
	if pos, _, failed := apply(level, 0, OpJump); !failed || pos != 0 {
		t.Errorf("jump off end: pos=%d failed=%v, want pos=0 failed=true", pos, failed)
	}
}

func TestHazardReasonMentionsTileKind(t *testing.T) {
	level := Level{Track: track(".~")}
	_, reason, failed := apply(level, 0, OpMove)

	if !failed {
		t.Fatal("expected move into gap to fail")
	}
	if !strings.Contains(reason, "gap") {
		t.Errorf("reason %q should name the tile kind", reason)
	}
	if !strings.Contains(reason, "jump") {
		t.Errorf("reason %q should suggest jumping", reason)
	}
}
