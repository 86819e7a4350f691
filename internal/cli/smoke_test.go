package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSmokeDependencies_ApplyDefaults(t *testing.T) {
	deps := SmokeDependencies{}
	deps.applyDefaults()

	if deps.Product != "Sauce Labs Backpack" {
		t.Errorf("Expected default product 'Sauce Labs Backpack', got '%s'", deps.Product)
	}

	deps = SmokeDependencies{Product: "Sauce Labs Onesie"}
	deps.applyDefaults()

	if deps.Product != "Sauce Labs Onesie" {
		t.Errorf("Expected explicit product to be kept, got '%s'", deps.Product)
	}
}

func TestRunSteps_ExecutesInOrder(t *testing.T) {
	var ran []string
	steps := []flowStep{
		{Name: "first", Run: func() error { ran = append(ran, "first"); return nil }},
		{Name: "second", Run: func() error { ran = append(ran, "second"); return nil }},
		{Name: "third", Run: func() error { ran = append(ran, "third"); return nil }},
	}

	err := runSteps(steps, func(string, ...any) {})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(ran) != len(want) {
		t.Fatalf("Expected %d steps to run, got %d", len(want), len(ran))
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("Step %d: expected %q, got %q", i, want[i], ran[i])
		}
	}
}

func TestRunSteps_StopsAtFirstFailure(t *testing.T) {
	stepErr := errors.New("element not visible")
	var thirdRan bool
	steps := []flowStep{
		{Name: "first", Run: func() error { return nil }},
		{Name: "second", Run: func() error { return stepErr }},
		{Name: "third", Run: func() error { thirdRan = true; return nil }},
	}

	err := runSteps(steps, func(string, ...any) {})
	if err == nil {
		t.Fatal("Expected error from failing step")
	}
	if !errors.Is(err, stepErr) {
		t.Errorf("Expected wrapped step error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "second") {
		t.Errorf("Expected failing step name in error, got: %v", err)
	}
	if thirdRan {
		t.Error("Expected execution to stop at the failing step")
	}
}

func TestRunSteps_LogsEachStep(t *testing.T) {
	var logged []string
	steps := []flowStep{
		{Name: "open login page", Run: func() error { return nil }},
		{Name: "log in", Run: func() error { return nil }},
	}

	err := runSteps(steps, func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// One line per step plus the summary line
	if len(logged) != 3 {
		t.Fatalf("Expected 3 log lines, got %d: %v", len(logged), logged)
	}
	if !strings.Contains(logged[0], "open login page") {
		t.Errorf("Expected first log line to name the step, got %q", logged[0])
	}
	if !strings.Contains(logged[2], "2 steps passed") {
		t.Errorf("Expected summary line, got %q", logged[2])
	}
}
