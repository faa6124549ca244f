// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlagValues holds the persistent flags shared by every subcommand.
type rootFlagValues struct {
	verbose    bool
	configPath string
	dir        string
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "plugkit",
		Short: "Compile plugin configuration into a manifest",
		Long: TitleStyle.Render("plugkit") + SubtitleStyle.Render(" - plugin manifest compiler") + `

plugkit reads the "figma-plugin" block of package.json, fills in defaults,
derives command ids and bundle paths, and writes manifest.json.

A figma.manifest.go or figma.manifest.jq file next to package.json may
rewrite the manifest before it is written.

` + SubtitleStyle.Render("Examples:") + `
  plugkit build               Write manifest.json
  plugkit build --watch       Rebuild whenever an input changes
  plugkit manifest            Print the manifest without writing it
  plugkit init                Create plugkit.cue
  plugkit config show         Show the effective settings`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.prepare(cmd.Context(), flags)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "settings file (default is ./plugkit.cue, then the user config directory)")
	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "project directory (default is the working directory)")

	rootCmd.AddCommand(
		newBuildCommand(app, flags),
		newManifestCommand(app, flags),
		newConfigCommand(app, flags),
		newInitCommand(app, flags),
	)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	return rootCmd
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main.
func Execute() {
	app := NewApp(Dependencies{})
	slog.SetDefault(app.slogger())

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// errorHandler defers to fang's styling except for errors the command
// already rendered itself.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Rendered {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
