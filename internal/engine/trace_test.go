package engine

import (
	"reflect"
	"testing"
)

func sixGround() Level {
	return Level{Track: track("......"), Start: 0, Goal: 5}
}

func gapLevel() Level {
	return Level{Track: track("..~..."), Start: 0, Goal: 5}
}

func TestRunStraightToGoal(t *testing.T) {
	trace := Run(sixGround(), Program{OpMove, OpMove, OpMove, OpMove, OpMove})

	if len(trace) != 5 {
		t.Fatalf("trace length = %d, want 5", len(trace))
	}
	last := trace[len(trace)-1]
	if last.Status != StatusSuccess {
		t.Errorf("final status = %v, want success", last.Status)
	}
	if last.Position != 5 {
		t.Errorf("final position = %d, want 5", last.Position)
	}
}

func TestRunMoveIntoGapFails(t *testing.T) {
	trace := Run(gapLevel(), Program{OpMove, OpMove, OpMove})

	if len(trace) != 3 {
		t.Fatalf("trace length = %d, want 3", len(trace))
	}
	last := trace[2]
	if last.Status != StatusFailed {
		t.Errorf("final status = %v, want failed", last.Status)
	}
	if last.Position != 2 {
		t.Errorf("final position = %d, want 2", last.Position)
	}
	if last.Reason == "" {
		t.Error("failed step should carry a reason")
	}
}

func TestRunJumpOverGapSucceeds(t *testing.T) {
	trace := Run(gapLevel(), Program{OpMove, OpJump, OpMove, OpMove})

	last := trace[len(trace)-1]
	if last.Status != StatusSuccess {
		t.Fatalf("final status = %v (reason %q), want success", last.Status, last.Reason)
	}
	if last.Position != 5 {
		t.Errorf("final position = %d, want 5", last.Position)
	}
}

func TestRunEmptyProgram(t *testing.T) {
	trace := Run(sixGround(), Program{})

	if len(trace) != 0 {
		t.Errorf("empty program should yield an empty trace, got %d steps", len(trace))
	}
}

func TestRunExhaustedProgram(t *testing.T) {
	trace := Run(sixGround(), Program{OpMove, OpMove})

	if len(trace) != 3 {
		t.Fatalf("trace length = %d, want 3 (two moves plus synthetic step)", len(trace))
	}
	last := trace[2]
	if last.Index != 2 {
		t.Errorf("synthetic step index = %d, want 2", last.Index)
	}
	if last.Status != StatusFailed {
		t.Errorf("synthetic step status = %v, want failed", last.Status)
	}
	if last.Reason != ReasonExhausted {
		t.Errorf("synthetic step reason = %q, want %q", last.Reason, ReasonExhausted)
	}
	if last.Position != 2 {
		t.Errorf("synthetic step position = %d, want 2", last.Position)
	}
}

func TestRunDeterminism(t *testing.T) {
	level := gapLevel()
	program := Program{OpMove, OpJump, OpMove, OpMove}

	trace1 := Run(level, program)
	trace2 := Run(level, program)

	if !reflect.DeepEqual(trace1, trace2) {
		t.Errorf("identical inputs produced different traces:\n%v\n%v", trace1, trace2)
	}
}

func TestRunTerminalOnce(t *testing.T) {
	programs := []Program{
		{OpMove, OpMove, OpMove, OpMove, OpMove},
		{OpMove, OpMove, OpMove},
		{OpMove, OpJump, OpMove, OpMove},
		{OpJump},
		{OpMove, OpMove},
		{},
	}

	for _, program := range programs {
		for _, level := range []Level{sixGround(), gapLevel()} {
			trace := Run(level, program)

			if len(trace) > len(program)+1 {
				t.Errorf("trace length %d exceeds program length %d + 1", len(trace), len(program))
			}
			for i, step := range trace {
				if i < len(trace)-1 && step.Status != StatusRunning {
					t.Errorf("step %d is terminal (%v) but not last", i, step.Status)
				}
			}
		}
	}
}

func TestRunSuccessReachesGoal(t *testing.T) {
	levels := []Level{
		sixGround(),
		gapLevel(),
		{Track: track(".^."), Start: 0, Goal: 2},
	}
	programs := []Program{
		{OpMove, OpMove, OpMove, OpMove, OpMove},
		{OpMove, OpJump, OpMove, OpMove},
		{OpJump},
	}

	for i, level := range levels {
		trace := Run(level, programs[i])
		if !trace.Succeeded() {
			last, _ := trace.Terminal()
			t.Errorf("level %d: expected success, got %v (%q)", i, last.Status, last.Reason)
			continue
		}
		last, _ := trace.Terminal()
		if last.Position < level.Goal {
			t.Errorf("level %d: success at position %d before goal %d", i, last.Position, level.Goal)
		}
	}
}

func TestRunStopsAfterFailure(t *testing.T) {
	// The first move walks into the gap; the trailing moves must not run.
	trace := Run(Level{Track: track(".~...."), Start: 0, Goal: 5},
		Program{OpMove, OpMove, OpMove, OpMove})

	if len(trace) != 1 {
		t.Fatalf("trace length = %d, want 1", len(trace))
	}
	if trace[0].Status != StatusFailed {
		t.Errorf("status = %v, want failed", trace[0].Status)
	}
}

func TestTraceTerminal(t *testing.T) {
	if _, ok := (Trace{}).Terminal(); ok {
		t.Error("empty trace should have no terminal step")
	}

	running := Trace{{Index: 0, Op: OpMove, Position: 1, Status: StatusRunning}}
	if _, ok := running.Terminal(); ok {
		t.Error("running trace should have no terminal step")
	}

	done := Run(sixGround(), Program{OpMove, OpMove, OpMove, OpMove, OpMove})
	last, ok := done.Terminal()
	if !ok || last.Status != StatusSuccess {
		t.Errorf("Terminal() = %v, %v; want success step", last, ok)
	}
}
