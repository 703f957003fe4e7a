package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rebalance"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders a rebalance plan: one row per asset with its current
// share, its share once the plan is applied, its target value and the amount
// to buy.
func PlanMarkdown(p *rebalance.Plan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Lazy Rebalance of %s", p.Contribution))
	doc.PlainText(fmt.Sprintf("Portfolio Value: %s → %s", p.Total, p.NewTotal))

	rows := make([][]string, 0, len(p.Lines)+1)
	for _, r := range p.Rows() {
		rows = append(rows, []string{r.Ticker, r.Holding, r.NewHolding, r.TargetValue, r.Buy})
	}
	rows = append(rows, []string{"Total", "", "", p.NewTotal.String(), p.TotalBuy().String()})

	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Holding", "New Holding", "Target Value", "Buy"},
		Rows:   rows,
	})

	for _, w := range p.Warnings {
		doc.PlainText(fmt.Sprintf("Warning: %v", w))
	}

	return doc.String()
}
