// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "package.json"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		originalErr := errors.New("some error")
		err := FormatError(originalErr, "package.json")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "package.json") {
			t.Errorf("error should contain filepath, got: %v", err)
		}
		if !errors.Is(err, originalErr) {
			t.Errorf("error should wrap the original error, got: %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{"empty path", []string{}, ""},
		{"single element", []string{"name"}, "name"},
		{"nested path", []string{"relaunchButtons", "open"}, "relaunchButtons.open"},
		{"array index", []string{"menu", "0", "main"}, "menu[0].main"},
		{"nested arrays", []string{"menu", "2", "menu", "0", "parameters", "1"}, "menu[2].menu[0].parameters[1]"},
		{"leading number is a field", []string{"0", "name"}, "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		limit   int64
		wantErr bool
	}{
		{"within limit", 11, 100, false},
		{"exact limit", 100, 100, false},
		{"empty", 0, 100, false},
		{"exceeds limit", 101, 100, true},
		{"no limit", 101, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(make([]byte, tt.size), tt.limit, "package.json")
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "101 bytes exceeds maximum 100") {
				t.Errorf("error should name actual and maximum size, got: %v", err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	withPath := &ValidationError{FilePath: "package.json", CUEPath: "menu[0].name", Message: "expected string"}
	if got, want := withPath.Error(), "package.json: menu[0].name: expected string"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	withoutPath := &ValidationError{FilePath: "plugkit.cue", Message: "syntax error"}
	if got, want := withoutPath.Error(), "plugkit.cue: syntax error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(withPath, ErrValidation) {
		t.Error("ValidationError should wrap ErrValidation")
	}
}
