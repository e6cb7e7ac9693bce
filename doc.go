/*
Package tmppath provides scope-bound temporary filesystem paths: a Path handle
deletes whatever entry exists at its location (a single file or an entire
directory tree) when the handle is closed.

It targets test harnesses and short-lived tooling that need guaranteed cleanup
of on-disk artifacts without hand-written teardown. The library never creates
anything on disk itself; it hands out fresh, collision-resistant path names and
owns only their removal.

Usage

Bind deletion to the enclosing scope with defer:

	p := tmppath.New()
	defer p.Close()

	// p.String() does not exist yet; create whatever you need there
	if err := os.WriteFile(p.String(), data, 0600); err != nil {
		...
	}
	// file is removed when the function returns, on any exit path

Directories work the same way; Close removes the whole tree:

	p := tmppath.New()
	defer p.Close()

	_ = os.Mkdir(p.String(), 0700)
	_ = os.WriteFile(filepath.Join(p.String(), "subfile"), data, 0600)

Close is best-effort and never returns a non-nil error, so it is safe in
deferred calls during an active panic and will never mask the original
failure. Deletion happens at most once per Path, no matter how many times
Close is called.

Test fixtures embedded at build time can be materialized to a scoped file:

	//go:embed testdata/fixture.txt
	var fixture []byte

	p := tmppath.Materialize(fixture)
	defer p.Close()

Path names are produced from a process-wide counter and are distinct within
one process (until the 16-bit counter wraps). Nothing guards against a
pre-existing unrelated file of the same name; that tradeoff suits test-style
usage, which is what this package is for.
*/
package tmppath
