// SPDX-License-Identifier: MPL-2.0

package override

import (
	"fmt"
	"go/parser"
	"go/token"
	"strconv"
)

// allowedImports are the standard library packages an override script may
// import. Everything else, notably os, os/exec, net, unsafe and reflect, is
// rejected before the script is evaluated.
var allowedImports = map[string]bool{
	"errors":        true,
	"fmt":           true,
	"maps":          true,
	"math":          true,
	"path":          true,
	"regexp":        true,
	"slices":        true,
	"sort":          true,
	"strconv":       true,
	"strings":       true,
	"unicode":       true,
	"unicode/utf8":  true,
	"encoding/json": true,
}

// validateScript parses the imports of src and rejects disallowed packages
// and a package clause other than "manifest".
func validateScript(filename, src string) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ImportsOnly)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOverride, err)
	}

	if f.Name.Name != scriptPackage {
		return fmt.Errorf("%w: %s: package must be %q, got %q", ErrInvalidOverride, filename, scriptPackage, f.Name.Name)
	}

	for _, imp := range f.Imports {
		pkg, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return fmt.Errorf("%w: %s: bad import %s", ErrInvalidOverride, filename, imp.Path.Value)
		}
		if !allowedImports[pkg] {
			return fmt.Errorf("%w: %s: import %q is not allowed", ErrInvalidOverride, filename, pkg)
		}
	}
	return nil
}
