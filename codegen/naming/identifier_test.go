package naming

import "testing"

func TestEscapeReserved(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"class", "class_"},
		{"event", "event_"},
		{"string", "string_"},
		{"namespace", "namespace_"},
		{"Activities", "Activities"},
		{"displayName", "displayName"},
		{"_private", "_private"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := EscapeReserved(tt.input); got != tt.want {
				t.Errorf("EscapeReserved(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"123abc", false},
		{"my-field", false},
		{"my.field", false},
		{"class", false},
		{"myField", true},
		{"_field", true},
		{"field123", true},
		{"Größe", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidIdentifier(tt.input); got != tt.want {
				t.Errorf("IsValidIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "_"},
		{"valid", "valid"},
		{"1st", "_1st"},
		{"my-field", "my_field"},
		{"a.b.c", "a_b_c"},
		{"int", "int_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
