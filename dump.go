// FILE: cubana-log/dump.go
package log

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders arbitrary data structures for diagnostics, configured
// for log-friendly, compact output
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true, // Cleaner for logs
	DisableCapacities:       true, // Less noise
	SortKeys:                true, // Consistent map output
}

// Sdump returns a deep rendering of the values, including type and size
// information for structs, maps, and pointers
func Sdump(args ...any) string {
	return strings.TrimSpace(dumper.Sdump(args...))
}

// Dump logs a deep rendering of values at trace level, useful for
// inspecting structures that have no printf-friendly representation
func (d *Dispatcher) Dump(args ...any) {
	d.log(3, LevelTrace, "%s", Sdump(args...))
}
