package rebalance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// This file contains the codecs of the two human edited CSV files:
//
// The targets file lists the target allocation, one "ticker, percent" per
// line, e.g.
//
//	VTI, 60
//	BND, 40
//
// The portfolio file is the holdings snapshot, one "ticker, $value" per line.
// Extra columns are allowed when reading, the value column is configurable.
// Neither file has a header. Lines starting with '#' are comments.

// DefaultValueColumn is the index of the value in a portfolio row.
const DefaultValueColumn = 1

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	return cr
}

// DecodeTargets reads the target allocation.
//
// Percentages are converted to exact fractions (60 is 0.6). Rows with a zero
// or negative percentage are dropped: they do not take part in the
// allocation.
func DecodeTargets(r io.Reader) ([]TargetRecord, error) {
	cr := newCSVReader(r)
	seen := make(map[string]bool)
	var targets []TargetRecord
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error in targets: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, fmt.Errorf("format error in targets on line %d: expected \"ticker, percent\" got %q", line, strings.Join(rec, ","))
		}
		ticker := strings.TrimSpace(rec[0])
		if ticker == "" {
			return nil, fmt.Errorf("format error in targets on line %d: %w: empty ticker", line, ErrInvalidInput)
		}
		target, err := ParsePercent(rec[1])
		if err != nil {
			return nil, fmt.Errorf("format error in targets on line %d: %w", line, err)
		}
		if !target.IsPositive() {
			continue
		}
		if seen[ticker] {
			return nil, fmt.Errorf("format error in targets on line %d: %w: %q", line, ErrDuplicateTicker, ticker)
		}
		seen[ticker] = true
		targets = append(targets, TargetRecord{Ticker: ticker, Target: target})
	}
	return targets, nil
}

// DecodeHoldings reads the holdings snapshot, taking the dollar value from
// the given column. The "$" prefix and thousands separators are ignored.
func DecodeHoldings(r io.Reader, column int) ([]HoldingRecord, error) {
	if column < 1 {
		return nil, fmt.Errorf("%w: value column must be at least 1, got %d", ErrInvalidInput, column)
	}
	cr := newCSVReader(r)
	var holdings []HoldingRecord
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("format error in portfolio: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) <= column {
			return nil, fmt.Errorf("format error in portfolio on line %d: no value in column %d of %q", line, column, strings.Join(rec, ","))
		}
		ticker := strings.TrimSpace(rec[0])
		if ticker == "" {
			return nil, fmt.Errorf("format error in portfolio on line %d: %w: empty ticker", line, ErrInvalidInput)
		}
		value, err := ParseMoney(rec[column])
		if err != nil {
			return nil, fmt.Errorf("format error in portfolio on line %d: %w", line, err)
		}
		holdings = append(holdings, HoldingRecord{Ticker: ticker, Value: value})
	}
	return holdings, nil
}

// EncodeHoldings writes the holdings snapshot, one "ticker,$value" row per
// record. Values are rounded to the cent.
func EncodeHoldings(w io.Writer, records []HoldingRecord) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		if err := cw.Write([]string{r.Ticker, r.Value.Dollar()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
