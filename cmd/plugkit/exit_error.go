// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"plugkit-cli/pkg/cueutil"
	"plugkit-cli/pkg/manifest/override"
	"plugkit-cli/pkg/pluginconfig"
	"plugkit-cli/pkg/types"
)

// ExitError signals a non-zero exit code without calling os.Exit inside
// RunE handlers. Rendered is set once the error has already been printed.
type ExitError struct {
	Code     types.ExitCode
	Err      error
	Rendered bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps configuration problems to ExitConfigError and
// everything else to ExitFailure.
func exitCodeFor(err error) types.ExitCode {
	switch {
	case err == nil:
		return types.ExitSuccess
	case errors.Is(err, pluginconfig.ErrConfiguration),
		errors.Is(err, pluginconfig.ErrMalformedPackageJSON),
		errors.Is(err, pluginconfig.ErrInvalidRawFile),
		errors.Is(err, pluginconfig.ErrInvalidMenuEntry),
		errors.Is(err, cueutil.ErrValidation),
		errors.Is(err, override.ErrInvalidOverride):
		return types.ExitConfigError
	default:
		return types.ExitFailure
	}
}
