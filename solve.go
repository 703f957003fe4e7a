package rebalance

import (
	"fmt"
)

// Plan is the outcome of a lazy rebalance: how much of the contribution goes
// to each asset.
type Plan struct {
	Contribution Money      // cash to invest
	Total        Money      // portfolio value before the contribution
	NewTotal     Money      // portfolio value after the contribution
	Lines        []PlanLine // one per asset, in portfolio order
	Warnings     []error    // non fatal conditions, e.g. ErrDegenerateAllocation
}

// PlanLine is the plan for a single asset.
type PlanLine struct {
	Ticker      string
	Target      Fraction // target allocation
	Value       Money    // value held before the plan
	Current     Fraction // Value / Total
	TargetValue Money    // Target * NewTotal
	Deficit     Money    // TargetValue - Value, negative when overweight
	Buy         Money    // amount to buy, never negative
	New         Fraction // (Value + Buy) / NewTotal
}

// NewValue returns the value held once the plan is applied.
func (l PlanLine) NewValue() Money { return l.Value.Add(l.Buy) }

// TotalBuy returns the sum of all buy amounts. It always equals the
// contribution.
func (p *Plan) TotalBuy() Money {
	total := Money{}
	for _, l := range p.Lines {
		total = total.Add(l.Buy)
	}
	return total
}

// Line returns the plan line for ticker.
func (p *Plan) Line(ticker string) (PlanLine, bool) {
	for _, l := range p.Lines {
		if l.Ticker == ticker {
			return l, true
		}
	}
	return PlanLine{}, false
}

// Solve computes how to invest contribution into the portfolio so that its
// allocation moves toward the targets without selling anything.
//
// Every asset gets a deficit: the gap between its target value, computed on
// the total after the contribution, and its current value. When the
// contribution does not cover all the positive deficits it is split in
// proportion to them. Otherwise every deficit is filled and the leftover is
// split in proportion to the target fractions of all assets.
//
// When nothing is held yet the current shares are undefined: they are reported
// as 0 and the plan carries a warning wrapping ErrDivisionByZero.
//
// Solve is pure: the portfolio is not modified, see Portfolio.Apply.
func Solve(contribution Money, p *Portfolio) (*Plan, error) {
	if contribution.IsNegative() {
		return nil, fmt.Errorf("%w: negative contribution %s", ErrInvalidInput, contribution.Fixed())
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("%w: empty portfolio", ErrDivisionByZero)
	}
	for a := range p.Assets() {
		if a.Target.IsNegative() {
			return nil, fmt.Errorf("%w: negative target %s for %q", ErrInvalidInput, a.Target, a.Ticker)
		}
	}

	total := p.TotalValue()
	newTotal := total.Add(contribution)
	if newTotal.IsZero() {
		return nil, fmt.Errorf("%w: nothing held and nothing to invest", ErrDivisionByZero)
	}

	plan := &Plan{
		Contribution: contribution,
		Total:        total,
		NewTotal:     newTotal,
		Lines:        make([]PlanLine, 0, p.Len()),
	}

	shortfall := Money{} // sum of the positive deficits
	for a := range p.Assets() {
		l := PlanLine{
			Ticker:      a.Ticker,
			Target:      a.Target,
			Value:       a.Value,
			TargetValue: newTotal.Mul(a.Target),
		}
		l.Deficit = l.TargetValue.Sub(a.Value)
		if l.Deficit.IsPositive() {
			shortfall = shortfall.Add(l.Deficit)
		}
		plan.Lines = append(plan.Lines, l)
	}

	switch {
	case contribution.IsZero():
	case shortfall.GreaterThanOrEqual(contribution):
		if err := fillProportionally(plan.Lines, contribution, shortfall); err != nil {
			return nil, err
		}
	default:
		warning, err := fillAndSpread(plan.Lines, contribution, shortfall, p.TotalTarget())
		if err != nil {
			return nil, err
		}
		if warning != nil {
			plan.Warnings = append(plan.Warnings, warning)
		}
	}

	if total.IsZero() {
		plan.Warnings = append(plan.Warnings, fmt.Errorf("%w: nothing held, current shares are undefined and reported as 0", ErrDivisionByZero))
	}

	for i := range plan.Lines {
		l := &plan.Lines[i]
		if !total.IsZero() {
			current, err := l.Value.Ratio(total)
			if err != nil {
				return nil, err
			}
			l.Current = current
		}
		next, err := l.NewValue().Ratio(newTotal)
		if err != nil {
			return nil, err
		}
		l.New = next
	}

	if allocated := plan.TotalBuy(); !allocated.Equal(contribution) {
		return nil, fmt.Errorf("internal error: allocated %s out of %s", allocated.Fixed(), contribution.Fixed())
	}
	return plan, nil
}

// fillProportionally splits the contribution among underweight lines in
// proportion to their deficit. Requires 0 < contribution <= shortfall, so
// no line gets more than its deficit.
func fillProportionally(lines []PlanLine, contribution, shortfall Money) error {
	for i := range lines {
		l := &lines[i]
		if !l.Deficit.IsPositive() {
			continue
		}
		share, err := l.Deficit.Ratio(shortfall)
		if err != nil {
			return err
		}
		l.Buy = contribution.Mul(share)
	}
	return nil
}

// fillAndSpread fills every deficit then spreads what is left of the
// contribution over all lines in proportion to their target.
//
// When all targets are zero the leftover goes to the first line and a
// warning wrapping ErrDegenerateAllocation is returned.
func fillAndSpread(lines []PlanLine, contribution, shortfall Money, totalTarget Fraction) (warning error, err error) {
	for i := range lines {
		if lines[i].Deficit.IsPositive() {
			lines[i].Buy = lines[i].Deficit
		}
	}

	leftover := contribution.Sub(shortfall)
	if totalTarget.IsZero() {
		lines[0].Buy = lines[0].Buy.Add(leftover)
		return fmt.Errorf("%w: all targets are zero, %s assigned to %q", ErrDegenerateAllocation, leftover.Fixed(), lines[0].Ticker), nil
	}

	for i := range lines {
		l := &lines[i]
		share, err := l.Target.Div(totalTarget)
		if err != nil {
			return nil, err
		}
		l.Buy = l.Buy.Add(leftover.Mul(share))
	}
	return nil, nil
}
