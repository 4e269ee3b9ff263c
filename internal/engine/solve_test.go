package engine

import (
	"reflect"
	"testing"
)

func TestSolveSolvableTracks(t *testing.T) {
	tests := []struct {
		name  string
		track string
		start int
		goal  int
		want  Program
	}{
		{"all ground", "......", 0, 5, Program{OpMove, OpMove, OpMove, OpMove, OpMove}},
		{"single gap", "..~...", 0, 5, Program{OpMove, OpJump, OpMove, OpMove}},
		{"gap then obstacle", ".~.^..", 0, 5, Program{OpJump, OpJump, OpMove}},
		{"hazard right before goal", "...^.", 0, 4, Program{OpMove, OpMove, OpJump}},
		{"start at goal", "...", 1, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := Level{Track: track(tt.track), Start: tt.start, Goal: tt.goal}
			program, ok := Solve(level)

			if !ok {
				t.Fatal("Solve() reported unsolvable")
			}
			if !reflect.DeepEqual(program, tt.want) {
				t.Errorf("Solve() = %v, want %v", program, tt.want)
			}

			if len(program) > 0 && !Run(level, program).Succeeded() {
				t.Error("solution does not complete the level")
			}
		})
	}
}

func TestSolveUnsolvableTracks(t *testing.T) {
	tests := []struct {
		name  string
		track string
		start int
		goal  int
	}{
		{"adjacent hazards", ".~~..", 0, 4},
		{"hazard before track end", "..~", 0, 2},
		{"goal past last tile", "...", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := Level{Track: track(tt.track), Start: tt.start, Goal: tt.goal}
			if program, ok := Solve(level); ok {
				t.Errorf("Solve() = %v, want unsolvable", program)
			}
		})
	}
}
