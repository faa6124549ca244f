// SPDX-License-Identifier: MPL-2.0

package pluginconfig

// FileRef is implemented by both the raw and the normalized file forms so
// a command id can be derived from either.
type FileRef interface {
	source() string
	handler() (string, bool)
}

func (f File) source() string { return f.Src }

func (f File) handler() (string, bool) { return f.Handler, f.Handler != "" }

func (f RawFile) source() string { return f.Src }

func (f RawFile) handler() (string, bool) {
	if f.Handler == nil {
		return "", false
	}
	return *f.Handler, true
}

// ResolveCommandID derives the stable identifier of the command whose main
// entry point is file: "<src>--<handler>", with the handler defaulting to
// "default".
//
// Uniqueness across a command tree is not checked here; two commands
// pointing at the same handler share an id.
func ResolveCommandID(file FileRef) string {
	handler, ok := file.handler()
	if !ok {
		handler = DefaultHandler
	}
	return file.source() + commandIDSeparator + handler
}
