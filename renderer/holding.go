package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/rebalance"
)

// PortfolioMarkdown renders the holdings next to their target allocation,
// followed by the holdings that have no target.
func PortfolioMarkdown(p *rebalance.Portfolio, untracked []rebalance.HoldingRecord) string {
	var b strings.Builder
	total := p.TotalValue()

	fmt.Fprintf(&b, "# Portfolio\n\n")
	fmt.Fprintln(&b, "| Ticker | Value | Holding | Target |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for a := range p.Assets() {
		holding := "-"
		if share, err := a.Value.Ratio(total); err == nil {
			holding = share.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.Ticker, a.Value, holding, a.Target)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | | **%s** |\n", total, p.TotalTarget())

	section(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Untracked\n\n")
		fmt.Fprintln(w, "These holdings have no target, they are not part of the allocation.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "| Ticker | Value |")
		fmt.Fprintln(w, "|:---|---:|")
		for _, h := range untracked {
			fmt.Fprintf(w, "| %s | %s |\n", h.Ticker, h.Value)
		}
		return len(untracked) > 0
	})

	return b.String()
}

// section writes what block wrote only if block returns true.
func section(w io.Writer, block func(io.Writer) bool) {
	var buf bytes.Buffer
	if block(&buf) {
		buf.WriteTo(w)
	}
}
