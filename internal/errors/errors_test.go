package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("forecast failed"),
			expected: "Error: forecast failed",
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("fetch 90210: %w", errors.New("unexpected status 503 Service Unavailable")),
			expected: "Error: fetch 90210: unexpected status 503 Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "simple message",
			format:   "no postal code given",
			args:     nil,
			expected: "Error: no postal code given",
		},
		{
			name:     "formatted message",
			format:   "invalid api url %q",
			args:     []interface{}{"ftp://x"},
			expected: "Error: invalid api url \"ftp://x\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Formatf(tt.format, tt.args...)
			if result != tt.expected {
				t.Errorf("Formatf(%q, %v) = %q, want %q", tt.format, tt.args, result, tt.expected)
			}
		})
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "reported", err: Reported(3, errors.New("boom")), want: 3},
		{name: "wrapped reported", err: fmt.Errorf("show: %w", Reported(2, errors.New("boom"))), want: 2},
		{name: "zero code falls back", err: &ExitError{Err: errors.New("boom")}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestReportedUnwraps(t *testing.T) {
	cause := errors.New("unexpected status 500")
	err := Reported(1, cause)
	if !errors.Is(err, cause) {
		t.Error("Reported() should unwrap to its cause")
	}
	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
	if got := (&ExitError{Code: 4}).Error(); got != "exit status 4" {
		t.Errorf("Error() without cause = %q", got)
	}
}

// TestFatal_Reported checks that reported errors exit without repeating the message
func TestFatal_Reported(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_REPORTED") == "1" {
		Fatal(Reported(2, errors.New("already shown")))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_Reported")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_REPORTED=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 2 {
			t.Errorf("Fatal() exit code = %d, want 2", e.ExitCode())
		}
		if strings.Contains(stderr.String(), "already shown") {
			t.Errorf("Fatal() stderr = %q, reported errors should not be printed", stderr.String())
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}

// TestFatalf tests the Fatalf function using exec helper process
func TestFatalf(t *testing.T) {
	if os.Getenv("GO_TEST_FATALF") == "1" {
		Fatalf("fetch %s failed", "90210")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalf")
	cmd.Env = append(os.Environ(), "GO_TEST_FATALF=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatalf() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: fetch 90210 failed") {
			t.Errorf("Fatalf() stderr = %q, want to contain %q", stderr.String(), "Error: fetch 90210 failed")
		}
	} else {
		t.Errorf("Fatalf() did not exit with error: %v", err)
	}
}
