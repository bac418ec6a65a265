// ABOUTME: Tests for version command
// ABOUTME: Verifies version info display and SetVersion functionality
package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestVersionCmd_Output(t *testing.T) {
	// Save original values
	originalVersion := versionInfo.Version
	originalCommit := versionInfo.Commit
	originalDate := versionInfo.Date
	defer func() {
		versionInfo.Version = originalVersion
		versionInfo.Commit = originalCommit
		versionInfo.Date = originalDate
	}()

	SetVersion("1.2.3", "abc123", "2026-08-01")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	expectedParts := []string{
		"memkeeper 1.2.3",
		"Commit: abc123",
		"Built:  2026-08-01",
	}
	for _, expected := range expectedParts {
		if !strings.Contains(outputStr, expected) {
			t.Errorf("Output should contain %q, got:\n%s", expected, outputStr)
		}
	}
}
