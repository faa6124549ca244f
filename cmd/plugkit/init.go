// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"plugkit-cli/internal/config"
	"plugkit-cli/pkg/manifest/override"
)

const (
	templateNone = "none"
	templateGo   = "go"
	templateJQ   = "jq"

	goOverrideStarter = `package manifest

// Override receives the assembled manifest and returns the one to write.
func Override(m map[string]any) map[string]any {
	return m
}
`

	jqOverrideStarter = `# Receives the assembled manifest; the single object it yields is written.
.
`
)

type initFlagValues struct {
	force    bool
	template string
}

func newInitCommand(app *App, rootFlags *rootFlagValues) *cobra.Command {
	flags := &initFlagValues{}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create plugkit.cue in the project directory",
		Long: `Create plugkit.cue holding the default settings.

With --template go or --template jq a pass-through manifest override
(figma.manifest.go or figma.manifest.jq) is created as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(app, rootFlags, flags)
		},
	}

	initCmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing override file")
	initCmd.Flags().StringVarP(&flags.template, "template", "t", templateNone, "override starter to create (none, go, jq)")

	return initCmd
}

func runInit(app *App, rootFlags *rootFlagValues, flags *initFlagValues) error {
	dir := rootFlags.dir
	if dir == "" {
		dir = "."
	}

	var starterName, starter string
	switch flags.template {
	case templateNone:
	case templateGo:
		starterName, starter = override.ScriptFileName, goOverrideStarter
	case templateJQ:
		starterName, starter = override.JQFileName, jqOverrideStarter
	default:
		return fmt.Errorf("unknown template %q (want none, go or jq)", flags.template)
	}

	cfgPath, created, err := config.CreateDefaultConfig(dir)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), cfgPath)
	} else {
		fmt.Fprintf(app.stdout, "%s Kept existing %s\n", SubtitleStyle.Render("•"), cfgPath)
	}

	if starterName != "" {
		path := filepath.Join(dir, starterName)
		if err := writeStarter(path, starter, flags.force); err != nil {
			return err
		}
		fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), path)
	}

	fmt.Fprintln(app.stdout)
	fmt.Fprintln(app.stdout, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(app.stdout, `  1. Add a "figma-plugin" block to package.json`)
	fmt.Fprintln(app.stdout, "  2. Run 'plugkit manifest' to preview the result")
	fmt.Fprintln(app.stdout, "  3. Run 'plugkit build' to write manifest.json")
	return nil
}

func writeStarter(path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
