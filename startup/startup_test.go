package startup

import (
	"errors"
	"testing"
)

func TestRunAllSteps(t *testing.T) {
	var order []string
	step := func(name string) Step {
		return Step{Name: name, Run: func() error {
			order = append(order, name)
			return nil
		}}
	}
	if err := Run(step("window"), step("context"), step("loader")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(order) != 3 || order[0] != "window" || order[1] != "context" || order[2] != "loader" {
		t.Fatalf("order = %v", order)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	errContext := errors.New("no context")
	var ran []string
	steps := []Step{
		{Name: "window", Run: func() error { ran = append(ran, "window"); return nil }},
		{Name: "context", Run: func() error { ran = append(ran, "context"); return errContext }},
		{Name: "loader", Run: func() error { ran = append(ran, "loader"); return nil }},
	}

	err := Run(steps...)
	if !errors.Is(err, errContext) {
		t.Fatalf("err = %v, want wrapped %v", err, errContext)
	}
	if len(ran) != 2 {
		t.Fatalf("ran = %v, loader must not run", ran)
	}
}

func TestRunNoSteps(t *testing.T) {
	if err := Run(); err != nil {
		t.Fatal(err)
	}
}
