package rebalance

// TargetRecord is a row of the target allocation source, already parsed.
type TargetRecord struct {
	Ticker string
	Target Fraction
}

// HoldingRecord is a row of the holdings snapshot: how much is currently held
// of a ticker.
type HoldingRecord struct {
	Ticker string
	Value  Money
}
