package validate

import (
	"fmt"
	"strings"

	"github.com/zora-rando/zora/pkg/item"
)

// Report is the Validator's outcome: pass/fail plus, on failure, enough
// detail to drive a retry decision or a human-readable diagnostic —
// the machine-readable "missing items and unreached destinations" spec.md
// §4.8 requires the validator to report, shaped after teacher's
// ValidationReport/ConstraintResult pair rather than a bare error string.
type Report struct {
	Passed                bool
	MissingItems          []item.Kind
	UnreachedDestinations []string
}

// Summary renders a human-readable rendition of r, in the structure of
// teacher's validation.Summary(report).
func Summary(r *Report) string {
	var b strings.Builder
	b.WriteString("=== Validation Report ===\n\n")
	if r.Passed {
		b.WriteString("Status: PASSED\n")
		return b.String()
	}
	b.WriteString("Status: FAILED\n\n")
	if len(r.MissingItems) > 0 {
		b.WriteString("Missing required items:\n")
		for _, k := range r.MissingItems {
			fmt.Fprintf(&b, "  - %s\n", item.New(k))
		}
	}
	if len(r.UnreachedDestinations) > 0 {
		b.WriteString("Unreached destinations:\n")
		for _, d := range r.UnreachedDestinations {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
	}
	return b.String()
}
