// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsFatalFsnotifyError(t *testing.T) {
	t.Parallel()

	fatal := []error{
		errnoTooManyOpenFiles,
		errnoInvalidHandle,
		errnoNotEnoughMemory,
		fmt.Errorf("read directory changes: %w", errnoInvalidHandle),
	}
	for _, err := range fatal {
		if !isFatalFsnotifyError(err) {
			t.Errorf("isFatalFsnotifyError(%v) = false, want true", err)
		}
	}

	recoverable := []error{
		errors.New("sharing violation"),
		fmt.Errorf("stat %s: access denied", "package.json"),
	}
	for _, err := range recoverable {
		if isFatalFsnotifyError(err) {
			t.Errorf("isFatalFsnotifyError(%v) = true, want false", err)
		}
	}
}
