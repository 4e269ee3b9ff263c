package engine

// Solve computes a program that carries the character from the level's start
// to its goal, or reports that no program exists. The walk is greedy and
// exact for this vocabulary: on ground ahead it moves, before a single
// hazard it jumps. A track is unsolvable when a jump would land on a second
// hazard or past the track end.
//
// Solve is used by the levels package to reject catalog files that cannot be
// completed, and by the solve command to show players a reference solution.
func Solve(level Level) (Program, bool) {
	var program Program
	pos := level.Start

	for pos < level.Goal {
		ahead := pos + 1
		if ahead >= len(level.Track) {
			// No block can carry the character past the last tile: a move
			// off the end fails with "ran out of path" and a jump with
			// "jump was too far". A goal out there cannot be reached.
			return nil, false
		}

		if !level.Track[ahead].Blocking() {
			program = append(program, OpMove)
			pos = ahead
			continue
		}

		landing := pos + 2
		if landing >= len(level.Track) || level.Track[landing].Blocking() {
			return nil, false
		}
		program = append(program, OpJump)
		pos = landing
	}

	return program, true
}
