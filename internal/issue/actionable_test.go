// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "write manifest"},
			expected: "failed to write manifest",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "write manifest", Resource: "./manifest.json"},
			expected: "failed to write manifest: ./manifest.json",
		},
		{
			name:     "operation with cause",
			err:      &ActionableError{Operation: "load configuration", Cause: errors.New("unexpected token")},
			expected: "failed to load configuration: unexpected token",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "read plugin configuration",
				Resource:  "./package.json",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to read plugin configuration: ./package.json: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := error(&ActionableError{Operation: "build manifest", Cause: fmt.Errorf("outer: %w", sentinel)})

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the sentinel through the cause chain")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should match *ActionableError")
	}
	if ae.Operation != "build manifest" {
		t.Errorf("Operation = %q", ae.Operation)
	}

	if (&ActionableError{Operation: "x"}).Unwrap() != nil {
		t.Error("Unwrap() without cause should be nil")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("permission denied")
	err := &ActionableError{
		Operation:   "write manifest",
		Resource:    "./manifest.json",
		Suggestions: []string{"Check directory permissions", "Choose another output path"},
		Cause:       fmt.Errorf("rename temp file: %w", root),
	}

	tests := []struct {
		name        string
		verbose     bool
		contains    []string
		notContains []string
	}{
		{
			name:    "concise",
			verbose: false,
			contains: []string{
				"failed to write manifest",
				"./manifest.json",
				"• Check directory permissions",
				"• Choose another output path",
			},
			notContains: []string{"Error chain:"},
		},
		{
			name:    "verbose",
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. rename temp file: permission denied",
				"2. permission denied",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := err.Format(tt.verbose)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Format(%v) missing %q in:\n%s", tt.verbose, want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("Format(%v) should not contain %q", tt.verbose, unwanted)
				}
			}
		})
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	if (&ActionableError{Operation: "x"}).HasSuggestions() {
		t.Error("HasSuggestions() = true for empty suggestions")
	}
	if !(&ActionableError{Operation: "x", Suggestions: []string{"y"}}).HasSuggestions() {
		t.Error("HasSuggestions() = false with one suggestion")
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	tests := []struct {
		name    string
		build   func() *ActionableError
		wantNil bool
		want    ActionableError
	}{
		{
			name:    "no operation",
			build:   func() *ActionableError { return NewErrorContext().WithResource("x").Build() },
			wantNil: true,
		},
		{
			name: "all fields",
			build: func() *ActionableError {
				return NewErrorContext().
					WithOperation("apply manifest override").
					WithResource("figma.manifest.go").
					WithSuggestion("first").
					WithSuggestions("second", "third").
					WithIssue(OverrideFailedId).
					Wrap(cause).
					Build()
			},
			want: ActionableError{
				Operation:   "apply manifest override",
				Resource:    "figma.manifest.go",
				Suggestions: []string{"first", "second", "third"},
				Issue:       OverrideFailedId,
				Cause:       cause,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.build()
			if tt.wantNil {
				if got != nil {
					t.Errorf("Build() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Build() returned nil")
			}
			if got.Operation != tt.want.Operation || got.Resource != tt.want.Resource ||
				got.Issue != tt.want.Issue || !errors.Is(got.Cause, tt.want.Cause) {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}
			if strings.Join(got.Suggestions, "|") != strings.Join(tt.want.Suggestions, "|") {
				t.Errorf("Suggestions = %v, want %v", got.Suggestions, tt.want.Suggestions)
			}
		})
	}
}

func TestErrorContext_BuildError(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want untyped nil", err)
	}
	if err := NewErrorContext().WithOperation("x").BuildError(); err == nil {
		t.Error("BuildError() with operation returned nil")
	}
}

func TestIssueOf(t *testing.T) {
	t.Parallel()

	inner := NewErrorContext().WithOperation("write manifest").WithIssue(ManifestWriteFailedId).BuildError()
	outerPlain := NewErrorContext().WithOperation("build plugin").Wrap(inner).BuildError()
	outerTagged := NewErrorContext().WithOperation("build plugin").WithIssue(PermissionDeniedId).Wrap(inner).BuildError()

	tests := []struct {
		name string
		err  error
		want Id
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("x"), 0},
		{"untagged actionable", NewActionableError("x"), 0},
		{"tagged", inner, ManifestWriteFailedId},
		{"wrapped by fmt", fmt.Errorf("ctx: %w", inner), ManifestWriteFailedId},
		{"inner tag through untagged outer", outerPlain, ManifestWriteFailedId},
		{"outer tag wins", outerTagged, PermissionDeniedId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IssueOf(tt.err); got != tt.want {
				t.Errorf("IssueOf() = %d, want %d", got, tt.want)
			}
		})
	}
}
