// ABOUTME: Tests for the add command
// ABOUTME: Verifies memory creation against a temp database and input validation
package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddCmd_CreatesMemory(t *testing.T) {
	tmpDB := filepath.Join(t.TempDir(), "test.db")

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"add", "--db", tmpDB, "--app", "Test Agent", "hello world"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	if !strings.Contains(outputStr, "Added memory") {
		t.Errorf("output should confirm creation, got:\n%s", outputStr)
	}
	// App name is normalized before storage
	if !strings.Contains(outputStr, "test_agent") {
		t.Errorf("output should show the normalized app name, got:\n%s", outputStr)
	}
}

func TestAddCmd_RequiresApp(t *testing.T) {
	tmpDB := filepath.Join(t.TempDir(), "test.db")

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"add", "--db", tmpDB, "some text"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should fail without --app")
	}
}

func TestAddCmd_RejectsEmptyText(t *testing.T) {
	tmpDB := filepath.Join(t.TempDir(), "test.db")

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"add", "--db", tmpDB, "--app", "test_agent"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should fail with no text")
	}
}
