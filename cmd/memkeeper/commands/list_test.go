// ABOUTME: Tests for the list command
// ABOUTME: Verifies filtered listing, limits, and JSON output against a temp database
package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return output.String()
}

func TestListCmd_EmptyDatabase(t *testing.T) {
	tmpDB := filepath.Join(t.TempDir(), "test.db")

	output := runCLI(t, "list", "--db", tmpDB, "--format", "table")
	if !strings.Contains(output, "No memories found") {
		t.Errorf("output = %q, want no-memories notice", output)
	}
}

func TestListCmd_JSONOutput(t *testing.T) {
	tmpDB := filepath.Join(t.TempDir(), "test.db")

	runCLI(t, "add", "--db", tmpDB, "--app", "test_agent", "first memory")
	runCLI(t, "add", "--db", tmpDB, "--app", "other_agent", "second memory")

	output := runCLI(t, "list", "--db", tmpDB, "--app", "test_agent", "--format", "json")

	var memories []struct {
		ID      string `json:"id"`
		Content string `json:"content"`
		AppName string `json:"app_name"`
	}
	if err := json.Unmarshal([]byte(output), &memories); err != nil {
		t.Fatalf("unmarshaling output: %v\n%s", err, output)
	}
	if len(memories) != 1 {
		t.Fatalf("got %d memories, want 1", len(memories))
	}
	if memories[0].Content != "first memory" {
		t.Errorf("content = %q, want first memory", memories[0].Content)
	}
	if memories[0].AppName != "test_agent" {
		t.Errorf("app_name = %q, want test_agent", memories[0].AppName)
	}
}

func TestListCmd_Limit(t *testing.T) {
	tmpDB := filepath.Join(t.TempDir(), "test.db")

	for _, text := range []string{"one", "two", "three"} {
		runCLI(t, "add", "--db", tmpDB, "--app", "test_agent", text)
	}

	output := runCLI(t, "list", "--db", tmpDB, "--limit", "2", "--format", "json")

	var memories []json.RawMessage
	if err := json.Unmarshal([]byte(output), &memories); err != nil {
		t.Fatalf("unmarshaling output: %v\n%s", err, output)
	}
	if len(memories) != 2 {
		t.Errorf("got %d memories, want 2", len(memories))
	}
}
