package securerandom

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Packages that produce key material must not import math/rand, aliased,
// dotted or as a subpackage.
func TestKeyMaterialAvoidsMathRand(t *testing.T) {
	for _, dir := range []string{".", "../../core/keysheet"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files)

		for _, file := range files {
			fset := token.NewFileSet()
			node, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range node.Imports {
				path := strings.Trim(imp.Path.Value, `"`)
				assert.False(t, path == "math/rand" || strings.HasPrefix(path, "math/rand/"),
					"%s imports %s, use securerandom instead", fset.Position(imp.Pos()), path)
			}
		}
	}
}
