//go:build natrium_debug

package text

import "fmt"

// checkFocus panics on a mutable row access after a structural edit that
// was not followed by a focus hint. It catches cursor moves that forgot to
// relocate the focus.
func (b *SplitBuffer) checkFocus(n int) {
	if !b.hinted {
		panic(fmt.Sprintf("text: mutable access to row %d without a focus hint since the last edit", n))
	}
}
