// pkg/probe/directives.go
package probe

import (
	"fmt"
	"io"
)

// Emitter writes build directive lines for the calling build system.
// One line per directive, each starting with DirectivePrefix. The
// emitter never writes anything else to its writer, so directives can
// be machine-consumed from stdout.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates an Emitter targeting w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// LinkSearchNative directs the build system to search dir for native
// libraries.
func (e *Emitter) LinkSearchNative(dir string) {
	e.line("link-search=native=%s", dir)
}

// LinkSearchFramework directs the build system to search dir for
// framework libraries.
func (e *Emitter) LinkSearchFramework(dir string) {
	e.line("link-search=framework=%s", dir)
}

// LinkLibDynamic directs the build system to link name dynamically.
func (e *Emitter) LinkLibDynamic(name string) {
	e.line("link-lib=%s", name)
}

// LinkLibStatic directs the build system to link name statically.
func (e *Emitter) LinkLibStatic(name string) {
	e.line("link-lib=static=%s", name)
}

// LinkFramework directs the build system to link the named framework.
func (e *Emitter) LinkFramework(name string) {
	e.line("link-lib=framework=%s", name)
}

func (e *Emitter) line(format string, args ...interface{}) {
	fmt.Fprintf(e.w, DirectivePrefix+format+"\n", args...)
}
