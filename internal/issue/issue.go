// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	PackageJSONMalformedId
	PluginConfigInvalidId
	MissingMainEntryPointId
	RelaunchButtonMissingMainId
	OverrideInvalidId
	OverrideFailedId
	ManifestWriteFailedId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // project documentation about the issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

const manifestDocs HttpLink = "https://www.figma.com/plugin-docs/manifest/"

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

plugkit could not read its settings file (plugkit.cue).

## Things you can try:
- Check the file for CUE syntax errors
- Remove unknown keys; the schema is closed
- Print the effective settings:
~~~
$ plugkit config show
~~~`,
	}

	packageJSONMalformedIssue = &Issue{
		id: PackageJSONMalformedId,
		mdMsg: `
# package.json is not valid JSON!

The plugin configuration is read from package.json, which failed to parse.

## Things you can try:
- Look for trailing commas or unquoted keys
- Validate the file:
~~~
$ npx jsonlint package.json
~~~`,
	}

	pluginConfigInvalidIssue = &Issue{
		id: PluginConfigInvalidId,
		mdMsg: `
# Invalid plugin configuration!

The "figma-plugin" block of package.json does not match the expected shape.

## Things you can try:
- ` + "`main` and `ui`" + ` must be a path string or ` + "`{\"src\": ..., \"handler\": ...}`" + `
- Menu entries must be command objects or the separator ` + "`\"-\"`" + `
- ` + "`editorType`" + ` accepts figma, figjam, dev and slides`,
		extLinks: []HttpLink{manifestDocs},
	}

	missingMainEntryPointIssue = &Issue{
		id: MissingMainEntryPointId,
		mdMsg: `
# Missing main entry point!

No command in the plugin declares a ` + "`main`" + ` bundle, so the host would have nothing to run.

## Things you can try:
- Add a main entry point at the top level:
~~~json
"figma-plugin": {
  "name": "My Plugin",
  "main": "src/main.ts"
}
~~~
- Or give at least one menu command a ` + "`main`",
		extLinks: []HttpLink{manifestDocs},
	}

	relaunchButtonMissingMainIssue = &Issue{
		id: RelaunchButtonMissingMainId,
		mdMsg: `
# Relaunch button without main!

Every entry of ` + "`relaunchButtons`" + ` must name the ` + "`main`" + ` file it runs.

## Things you can try:
~~~json
"relaunchButtons": {
  "open": { "name": "Open", "main": "src/open.ts" }
}
~~~`,
		extLinks: []HttpLink{manifestDocs},
	}

	overrideInvalidIssue = &Issue{
		id: OverrideInvalidId,
		mdMsg: `
# Invalid manifest override!

The override file could not be loaded.

## Things you can try:
- In figma.manifest.go, declare ` + "`package manifest`" + ` and
~~~go
func Override(m map[string]any) map[string]any
~~~
- Only pure standard library packages may be imported (no os, net or exec)
- In figma.manifest.jq, check the jq syntax`,
	}

	overrideFailedIssue = &Issue{
		id: OverrideFailedId,
		mdMsg: `
# Manifest override failed!

The override hook returned an error or panicked. No manifest was written.

## Things you can try:
- Run with --verbose to see the full error chain
- Preview the assembled manifest without writing it:
~~~
$ plugkit manifest
~~~
- Disable hooks temporarily with PLUGKIT_OVERRIDE_ENABLED=false`,
	}

	manifestWriteFailedIssue = &Issue{
		id: ManifestWriteFailedId,
		mdMsg: `
# Failed to write the manifest!

The manifest was assembled but could not be saved.

## Things you can try:
- Check that the output directory is writable
- Change the destination with ` + "`output.manifest`" + ` in plugkit.cue`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

plugkit lacks permission to read or write a project file.

## Things you can try:
- Check the file's permissions:
~~~
$ ls -l package.json manifest.json
~~~
- Make sure the project directory is not mounted read-only`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():          configLoadFailedIssue,
		packageJSONMalformedIssue.Id():      packageJSONMalformedIssue,
		pluginConfigInvalidIssue.Id():       pluginConfigInvalidIssue,
		missingMainEntryPointIssue.Id():     missingMainEntryPointIssue,
		relaunchButtonMissingMainIssue.Id(): relaunchButtonMissingMainIssue,
		overrideInvalidIssue.Id():           overrideInvalidIssue,
		overrideFailedIssue.Id():            overrideFailedIssue,
		manifestWriteFailedIssue.Id():       manifestWriteFailedIssue,
		permissionDeniedIssue.Id():          permissionDeniedIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
}

func Get(id Id) *Issue {
	return issues[id]
}
