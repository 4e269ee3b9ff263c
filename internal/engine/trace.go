package engine

// Run executes a program against a level and returns the full trace.
//
// Execution starts at level.Start and folds apply over the program in order,
// recording one step per instruction. A step that fails, or that reaches or
// passes level.Goal, is terminal: no further instructions run. When every
// instruction is consumed without a terminal step, one synthetic failing
// step is appended with Index == len(program) to mark that the program ran
// out before the goal.
//
// An empty program yields an empty trace with no synthetic step; "no program"
// is deliberately distinguishable from "program exhausted without success".
//
// Run is total and deterministic: it never panics for well-formed inputs,
// always returns a trace of at most len(program)+1 steps, and identical
// inputs produce identical traces.
func Run(level Level, program Program) Trace {
	trace := make(Trace, 0, len(program))
	pos := level.Start

	for i, op := range program {
		next, reason, failed := apply(level, pos, op)
		pos = next

		status := StatusRunning
		switch {
		case failed:
			status = StatusFailed
		case pos >= level.Goal:
			status = StatusSuccess
		}

		trace = append(trace, Step{
			Index:    i,
			Op:       op,
			Position: pos,
			Status:   status,
			Reason:   reason,
		})

		if status != StatusRunning {
			return trace
		}
	}

	if len(program) > 0 {
		trace = append(trace, Step{
			Index:    len(program),
			Op:       OpNone,
			Position: pos,
			Status:   StatusFailed,
			Reason:   ReasonExhausted,
		})
	}

	return trace
}
