package tmppath

import (
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/c2fo/tmppath/utils"
)

// pathCount is the process-wide counter behind NextPathIn. The name width is
// kept at 16 bits so generated names stay short; it wraps to 0 after 65535,
// at which point names may repeat within a single process.
var pathCount atomic.Uint32

// NextPathIn returns the next candidate temporary path under dir, of the form
// "<dir>/rustytemp-<N>". N starts at 1 and increments on every call, so
// successive calls (from any number of goroutines) return distinct paths
// until the counter wraps. dir is not validated or touched; this is pure
// string computation and cannot fail.
func NextPathIn(dir string) string {
	n := uint16(pathCount.Add(1))
	return utils.RemoveTrailingSlash(dir) + "/rustytemp-" + strconv.FormatUint(uint64(n), 10)
}

// NextPath returns the next candidate temporary path under the system temp
// directory (os.TempDir).
func NextPath() string {
	return NextPathIn(os.TempDir())
}

// Path is a temporary filesystem path whose entry is deleted when the Path is
// closed. Construction only reserves a name; creating a file or directory at
// the path is the caller's job. The wrapped path never changes after
// construction.
type Path struct {
	name string
	once sync.Once
}

// New returns a Path under the system temp directory. Nothing is created on
// disk; immediately after New the path does not exist (barring an unrelated
// pre-existing entry of the same name).
func New() *Path {
	return &Path{name: NextPath()}
}

// NewIn returns a Path under the given base directory instead of the system
// temp directory.
func NewIn(dir string) *Path {
	return &Path{name: NextPathIn(dir)}
}

// String returns the wrapped path. Path implements fmt.Stringer so a handle
// can be passed directly to anything that formats or accepts a path string.
func (p *Path) String() string {
	return p.name
}

// Close deletes the filesystem entry at the wrapped path: a directory is
// removed recursively, anything else with a plain remove. Deletion is
// best-effort and happens at most once per Path; any error (entry missing,
// permissions, I/O) is discarded and Close always returns nil. The error
// return exists only to satisfy io.Closer, so `defer p.Close()` binds the
// deletion to the enclosing scope and stays safe during an active panic.
func (p *Path) Close() error {
	p.once.Do(p.remove)
	return nil
}

func (p *Path) remove() {
	if fi, err := os.Stat(p.name); err == nil && fi.IsDir() {
		_ = os.RemoveAll(p.name)
		return
	}
	_ = os.Remove(p.name)
}
