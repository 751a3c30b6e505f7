package cmd

import (
	"testing"
)

func TestSplitAssignment(t *testing.T) {
	tests := []struct {
		arg     string
		name    string
		value   string
		wantErr bool
	}{
		{"FOO=bar", "FOO", "bar", false},
		{"FOO=", "FOO", "", false},
		{"FOO=a=b", "FOO", "a=b", false},
		{"de.example.Key=secret", "de.example.Key", "secret", false},
		{"FOO", "", "", true},
		{"=bar", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			name, value, err := splitAssignment(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("splitAssignment(%q) succeeded, want error", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitAssignment(%q) error: %v", tt.arg, err)
			}
			if name != tt.name || value != tt.value {
				t.Errorf("splitAssignment(%q) = %q, %q; want %q, %q", tt.arg, name, value, tt.name, tt.value)
			}
		})
	}
}
