package levels

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blockhop/internal/engine"
)

func mustTrack(t *testing.T, s string) []engine.Tile {
	t.Helper()
	track := make([]engine.Tile, 0, len(s))
	for _, r := range s {
		switch r {
		case '~':
			track = append(track, engine.Gap)
		case '^':
			track = append(track, engine.Obstacle)
		default:
			track = append(track, engine.Ground)
		}
	}
	return track
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		level    engine.Level
		wantCode string
	}{
		{
			name:     "valid level",
			level:    engine.Level{ID: "ok", Track: mustTrack(t, "..~..."), Start: 0, Goal: 5},
			wantCode: "",
		},
		{
			name:     "missing id",
			level:    engine.Level{Track: mustTrack(t, "...."), Start: 0, Goal: 3},
			wantCode: "MISSING_ID",
		},
		{
			name:     "empty track",
			level:    engine.Level{ID: "x", Start: 0, Goal: 0},
			wantCode: "EMPTY_TRACK",
		},
		{
			name:     "negative start",
			level:    engine.Level{ID: "x", Track: mustTrack(t, "...."), Start: -1, Goal: 3},
			wantCode: "BAD_START",
		},
		{
			name:     "start past track",
			level:    engine.Level{ID: "x", Track: mustTrack(t, "...."), Start: 4, Goal: 4},
			wantCode: "BAD_START",
		},
		{
			name:     "start on hazard",
			level:    engine.Level{ID: "x", Track: mustTrack(t, "~..."), Start: 0, Goal: 3},
			wantCode: "BAD_START",
		},
		{
			name:     "goal before start",
			level:    engine.Level{ID: "x", Track: mustTrack(t, "...."), Start: 2, Goal: 1},
			wantCode: "BAD_GOAL",
		},
		{
			name:     "goal past track",
			level:    engine.Level{ID: "x", Track: mustTrack(t, "...."), Start: 0, Goal: 4},
			wantCode: "BAD_GOAL",
		},
		{
			name:     "goal on hazard",
			level:    engine.Level{ID: "x", Track: mustTrack(t, "...~"), Start: 0, Goal: 3},
			wantCode: "BAD_GOAL",
		},
		{
			name:     "adjacent hazards",
			level:    engine.Level{ID: "x", Track: mustTrack(t, ".~~.."), Start: 0, Goal: 4},
			wantCode: "NOT_SOLVABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.level)

			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			if verr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", verr.Code, tt.wantCode)
			}
		})
	}
}
