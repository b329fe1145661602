package when

import (
	"errors"
	"testing"
)

// flagMap adapts a map to FlagFunc for tests.
func flagMap(m map[string]bool) FlagFunc {
	return func(name string) (bool, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestParseAndEval(t *testing.T) {
	flags := flagMap(map[string]bool{
		"editor_focus":    true,
		"list_focus":      false,
		"modal":           true,
		"panel.visible":   true,
		"editor_readonly": false,
	})

	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"single flag true", "editor_focus", true},
		{"single flag false", "list_focus", false},
		{"negation", "!list_focus", true},
		{"and", "editor_focus && modal", true},
		{"and short", "editor_focus && list_focus", false},
		{"or", "list_focus || modal", true},
		{"or both false", "list_focus || editor_readonly", false},
		{"precedence or over and", "list_focus && modal || editor_focus", true},
		{"parens regroup", "list_focus && (modal || editor_focus)", false},
		{"dotted identifier", "panel.visible", true},
		{"double negation", "!!modal", true},
		{"mixed", "editor_focus && !editor_readonly", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.source)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.source, err)
			}
			got, err := expr.Eval(flags)
			if err != nil {
				t.Fatalf("Eval(%q) error: %v", tt.source, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	sources := []string{
		"&&",
		"editor_focus &&",
		"editor_focus & modal",
		"editor_focus | modal",
		"(editor_focus",
		"editor_focus)",
		"!",
		"editor_focus modal",
		"a @ b",
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			if _, err := Parse(source); !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse(%q) error = %v, want ErrMalformed", source, err)
			}
		})
	}
}

func TestEvalUnknownFlag(t *testing.T) {
	flags := flagMap(map[string]bool{"editor_focus": true})

	expr, err := Parse("editor_focus && no_such_flag")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := expr.Eval(flags); !errors.Is(err, ErrUnknownFlag) {
		t.Errorf("Eval error = %v, want ErrUnknownFlag", err)
	}

	// The unknown identifier surfaces even when the other side already
	// decides the result.
	expr, err = Parse("editor_focus || no_such_flag")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := expr.Eval(flags); !errors.Is(err, ErrUnknownFlag) {
		t.Errorf("Eval error = %v, want ErrUnknownFlag", err)
	}
}

func TestEvalNilFlags(t *testing.T) {
	expr, err := Parse("editor_focus")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := expr.Eval(nil); !errors.Is(err, ErrUnknownFlag) {
		t.Errorf("Eval(nil) error = %v, want ErrUnknownFlag", err)
	}
}
