package docmark

import (
	"fmt"
	"strings"
)

// tracef writes one line describing a recognised unit when tracing is enabled.
func (d *docParser) tracef(format string, args ...interface{}) {
	if d.trace == nil {
		return
	}
	fmt.Fprintf(d.trace, "%s%s %s\n", strings.Repeat("  ", d.depth), d.lines.Position(), fmt.Sprintf(format, args...))
}
