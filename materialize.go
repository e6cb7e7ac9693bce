package tmppath

import (
	"fmt"
	"io/fs"
	"os"
)

// Materialize writes content to a freshly created scoped temporary file and
// returns its Path. Intended for build-time-embedded fixtures (//go:embed
// byte slices) in tests.
//
// Panics if the file cannot be created or written: this helper is reserved
// for test-fixture setup, where such a failure means the environment is
// broken and the calling test should die, not limp on.
func Materialize(content []byte) *Path {
	p := New()
	if err := os.WriteFile(p.String(), content, 0600); err != nil {
		panic(fmt.Sprintf("tmppath: materialize to %s: %v", p, err))
	}
	return p
}

// MaterializeFS reads name from fsys (typically an embed.FS) and writes it to
// a freshly created scoped temporary file, returning its Path. Panics if the
// entry cannot be read or the file cannot be written; see Materialize.
func MaterializeFS(fsys fs.FS, name string) *Path {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		panic(fmt.Sprintf("tmppath: materialize %s: %v", name, err))
	}
	return Materialize(content)
}
