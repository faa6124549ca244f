// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"plugkit-cli/internal/issue"
	"plugkit-cli/pkg/cueutil"
	"plugkit-cli/pkg/manifest"
	"plugkit-cli/pkg/manifest/override"
	"plugkit-cli/pkg/pluginconfig"
)

// classifyConfigError tags a settings failure with the catalog entry.
// Errors that already carry one pass through unchanged.
func classifyConfigError(err error) error {
	if issue.IssueOf(err) != 0 {
		return err
	}
	return issue.NewErrorContext().
		WithOperation("load plugkit settings").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

// classifyBuildError maps a pipeline failure to an actionable error naming
// the file at fault and the catalog entry that explains it.
func classifyBuildError(err error, opts manifest.BuildOptions) error {
	packageJSON := opts.PackageJSON
	if packageJSON == "" {
		packageJSON = pluginconfig.PackageJSONFileName
	}
	descriptor := filepath.Join(opts.Dir, packageJSON)

	ctx := issue.NewErrorContext().Wrap(err)

	var cfgErr *pluginconfig.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		ctx.WithOperation("assemble manifest").WithResource(descriptor)
		switch {
		case cfgErr.Field == "main":
			ctx.WithIssue(issue.MissingMainEntryPointId).
				WithSuggestion(`Add "main" to the plugin block or to a menu command`)
		case strings.HasPrefix(cfgErr.Field, "relaunchButtons"):
			ctx.WithIssue(issue.RelaunchButtonMissingMainId).
				WithSuggestion(fmt.Sprintf(`Give %s a "main" entry`, cfgErr.Field))
		default:
			ctx.WithIssue(issue.PluginConfigInvalidId)
		}

	case errors.Is(err, pluginconfig.ErrMalformedPackageJSON):
		ctx.WithOperation("read plugin configuration").
			WithResource(descriptor).
			WithIssue(issue.PackageJSONMalformedId)

	case errors.Is(err, cueutil.ErrValidation),
		errors.Is(err, pluginconfig.ErrInvalidRawFile),
		errors.Is(err, pluginconfig.ErrInvalidMenuEntry):
		ctx.WithOperation("read plugin configuration").
			WithResource(descriptor).
			WithIssue(issue.PluginConfigInvalidId)

	case errors.Is(err, override.ErrInvalidOverride):
		ctx.WithOperation("load manifest override").
			WithIssue(issue.OverrideInvalidId).
			WithSuggestion("Run with --no-override to build without the hook")

	case errors.Is(err, override.ErrOverrideFailed),
		errors.Is(err, manifest.ErrHookReturnedNil):
		ctx.WithOperation("apply manifest override").
			WithIssue(issue.OverrideFailedId)

	case errors.Is(err, os.ErrPermission):
		ctx.WithOperation("build manifest").
			WithIssue(issue.PermissionDeniedId)

	case errors.Is(err, manifest.ErrWriteFailed):
		ctx.WithOperation("write manifest").
			WithResource(opts.OutputFile()).
			WithIssue(issue.ManifestWriteFailedId)

	default:
		ctx.WithOperation("build manifest")
	}
	return ctx.BuildError()
}

// formatErrorForDisplay uses ActionableError.Format when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// renderError prints err and, for known failure kinds, the catalog entry
// rendered in style. It returns the ExitError the handler should return.
func renderError(w io.Writer, err error, verbose bool, style string) *ExitError {
	fmt.Fprintf(w, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	if id := issue.IssueOf(err); id != 0 {
		if entry := issue.Get(id); entry != nil {
			rendered, renderErr := entry.Render(style)
			if renderErr != nil {
				slog.Warn("failed to render issue catalog entry", "issueID", id, "error", renderErr)
			} else {
				fmt.Fprint(w, rendered)
			}
		}
	}

	return &ExitError{Code: exitCodeFor(err), Err: err, Rendered: true}
}
