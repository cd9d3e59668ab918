package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = orig })

	runErr := fn()

	if err := w.Close(); err != nil {
		t.Fatalf("close pipe: %v", err)
	}
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	return buf.String(), runErr
}

func TestRunDemo(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runDemo(demoCmd, nil)
	})
	if err != nil {
		t.Fatalf("demo returned error: %v", err)
	}

	expected := []string{
		"5 + 3 = 8",
		"10 - 4 = 6",
		"6 * 7 = 42",
		"20 / 4 = 5",
		"5! = 120",
		"First 10 Fibonacci: [0, 1, 1, 2, 3, 5, 8, 13, 21, 34]",
		"Is 17 prime? true",
		"Sum of factorials of [0, 1, 1, 2, 3] = 11",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestJoinInts(t *testing.T) {
	cases := []struct {
		name     string
		nums     []int
		expected string
	}{
		{"empty", nil, "[]"},
		{"single", []int{0}, "[0]"},
		{"several", []int{0, 1, 1, 2}, "[0, 1, 1, 2]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := joinInts(tc.nums); got != tc.expected {
				t.Errorf("joinInts(%v) = %q, want %q", tc.nums, got, tc.expected)
			}
		})
	}
}
