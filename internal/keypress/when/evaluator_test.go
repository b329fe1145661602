package when

import "testing"

func TestEvaluatorMatch(t *testing.T) {
	e := NewEvaluator(nil)
	flags := flagMap(map[string]bool{"editor_focus": true, "modal": false})

	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"empty clause always matches", "", true},
		{"true clause", "editor_focus", true},
		{"false clause", "modal", false},
		{"malformed fails closed", "editor_focus &&", false},
		{"unknown flag fails closed", "no_such_flag", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Match(tt.source, flags); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestEvaluatorReevaluatesLiveFlags(t *testing.T) {
	// One parse, many evaluations: flipping a flag flips the result
	// without re-parsing.
	e := NewEvaluator(nil)
	state := map[string]bool{"editor_focus": false}
	flags := flagMap(state)

	if e.Match("editor_focus", flags) {
		t.Fatal("clause matched before flag set")
	}
	state["editor_focus"] = true
	if !e.Match("editor_focus", flags) {
		t.Fatal("clause did not track live flag change")
	}
}

func TestEvaluatorReportsOnce(t *testing.T) {
	var reports []string
	e := NewEvaluator(func(source string, err error) {
		reports = append(reports, source)
	})
	flags := flagMap(nil)

	for i := 0; i < 5; i++ {
		e.Match("editor_focus &&", flags)
		e.Match("no_such_flag", flags)
	}

	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2: %v", len(reports), reports)
	}
}

func TestEvaluatorInvalidate(t *testing.T) {
	var reports int
	e := NewEvaluator(func(string, error) { reports++ })
	flags := flagMap(nil)

	e.Match("editor_focus &&", flags)
	if reports != 1 {
		t.Fatalf("got %d reports, want 1", reports)
	}

	// After invalidation the still-broken clause is reported again.
	e.Invalidate("editor_focus &&")
	e.Match("editor_focus &&", flags)
	if reports != 2 {
		t.Fatalf("got %d reports after invalidate, want 2", reports)
	}
}
