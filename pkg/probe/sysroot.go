// pkg/probe/sysroot.go
package probe

import (
	"os"
	"path/filepath"
	"strings"
)

// Sysroot is the trusted-system-root policy. Directories under the root
// are assumed available at link time and never justify static linking,
// so base OS libraries cannot end up embedded in the output binary.
type Sysroot struct {
	root       string
	fileExists func(path string) bool
}

// NewSysroot creates the policy for the given root prefix.
func NewSysroot(root string) *Sysroot {
	return &Sysroot{
		root: filepath.Clean(root),
		fileExists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// Trusted reports whether dir is the system root or a descendant of it.
func (s *Sysroot) Trusted(dir string) bool {
	dir = filepath.Clean(dir)
	return dir == s.root || strings.HasPrefix(dir, s.root+string(filepath.Separator))
}

// staticArchiveOutside reports whether lib<name>.a exists in at least
// one of the collected search directories that lies outside the trusted
// root. Only such an archive justifies a static link directive; the
// check is advisory and re-run fresh on every resolution.
func (s *Sysroot) staticArchiveOutside(name string, dirs []string) bool {
	archive := "lib" + name + ".a"
	for _, dir := range dirs {
		if s.Trusted(dir) {
			continue
		}
		if s.fileExists(filepath.Join(dir, archive)) {
			return true
		}
	}
	return false
}
