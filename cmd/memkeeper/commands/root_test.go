// ABOUTME: Tests for root command setup
// ABOUTME: Verifies persistent flags and registered subcommands
package commands

import "testing"

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := map[string]bool{
		"mcp":     false,
		"add":     false,
		"list":    false,
		"version": false,
	}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestNewRootCmd_PersistentFlags(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"verbose", "v", "false"},
		{"quiet", "q", "false"},
		{"format", "", "table"},
		{"db", "", ""},
	}

	for _, tt := range tests {
		flag := cmd.PersistentFlags().Lookup(tt.name)
		if flag == nil {
			t.Errorf("persistent flag %q not found", tt.name)
			continue
		}
		if flag.Shorthand != tt.shorthand {
			t.Errorf("flag %q shorthand = %q, want %q", tt.name, flag.Shorthand, tt.shorthand)
		}
		if flag.DefValue != tt.defValue {
			t.Errorf("flag %q default = %q, want %q", tt.name, flag.DefValue, tt.defValue)
		}
	}
}
