package rebalance

// Row is the display form of a plan line. All values are rounded to 2 decimal
// places, percentages end with "%" and amounts start with "$".
type Row struct {
	Ticker      string
	Holding     string // current share of the portfolio
	NewHolding  string // share once the plan is applied
	TargetValue string // target dollar value after the contribution
	Buy         string // dollar amount to buy
}

// Rows returns the display rows of the plan, in portfolio order.
func (p *Plan) Rows() []Row {
	rows := make([]Row, 0, len(p.Lines))
	for _, l := range p.Lines {
		rows = append(rows, Row{
			Ticker:      l.Ticker,
			Holding:     l.Current.String(),
			NewHolding:  l.New.String(),
			TargetValue: l.TargetValue.String(),
			Buy:         l.Buy.String(),
		})
	}
	return rows
}

// Records returns the holdings once the plan is applied, for the snapshot
// writer.
func (p *Plan) Records() []HoldingRecord {
	records := make([]HoldingRecord, 0, len(p.Lines))
	for _, l := range p.Lines {
		records = append(records, HoldingRecord{Ticker: l.Ticker, Value: l.NewValue()})
	}
	return records
}
