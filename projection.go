package mmf

import (
	"errors"
	"fmt"
)

// CalculationError reports that a single fund's projection failed. It is an
// expected, recoverable failure: Compare downgrades it to a per-fund warning
// instead of aborting the batch.
type CalculationError struct {
	Fund string
	Err  error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("error calculating returns for %s: %v", e.Fund, e.Err)
}

func (e *CalculationError) Unwrap() error { return e.Err }

// MonthlyBalance is one point of the projection's monthly series.
type MonthlyBalance struct {
	Label   string
	Balance Money
}

// ProjectionResult is the full outcome of projecting one fund over the
// horizon. It is immutable once returned.
type ProjectionResult struct {
	FinalBalance     Money
	TotalInterest    Money
	TotalFees        Money
	TotalContributed Money
	NetReturn        Percent // percentage gain over the total contributed
	Monthly          []MonthlyBalance
	Daily            []DailyBalance
}

// Project runs the full projection of one fund under the given parameters.
// It is a pure function: identical inputs yield identical results. Any
// failure is reported as a *CalculationError naming the fund.
func Project(f Fund, p *Parameters) (result *ProjectionResult, err error) {
	// Monetary arithmetic panics on misuse (currency mismatch, division by
	// zero). Attribute such failures to the fund instead of crashing the batch.
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, &CalculationError{Fund: f.Name(), Err: fmt.Errorf("%v", r)}
		}
	}()

	if !DailyRate(f).IsPositive() {
		return nil, &CalculationError{Fund: f.Name(), Err: errors.New("fund has a non-positive interest rate")}
	}

	balance := p.InitialCapital()
	totalInterest := M(0, p.Currency())
	totalFees := M(0, p.Currency())
	totalContributed := p.InitialCapital()

	current := p.StartDate()
	monthly := []MonthlyBalance{{Label: current.Label(), Balance: balance}}
	var daily []DailyBalance

	for period := 0; period < p.HorizonMonths(); period++ {
		settled := SettleMonth(f, p, current, period, balance)

		balance = settled.Balance
		totalInterest = totalInterest.Add(settled.Interest)
		totalFees = totalFees.Add(settled.Fee)
		if period > 0 {
			totalContributed = totalContributed.Add(p.MonthlyContribution())
		}

		current = current.AddMonths(1)
		monthly = append(monthly, MonthlyBalance{Label: current.Label(), Balance: balance})
		daily = append(daily, settled.Days...)
	}

	var netReturn Percent
	if !totalContributed.IsZero() {
		gain := balance.Sub(totalContributed)
		netReturn = Percent(gain.Amount().Div(totalContributed.Amount()).Mul(decHundred).InexactFloat64())
	}

	return &ProjectionResult{
		FinalBalance:     balance,
		TotalInterest:    totalInterest,
		TotalFees:        totalFees,
		TotalContributed: totalContributed,
		NetReturn:        netReturn,
		Monthly:          monthly,
		Daily:            daily,
	}, nil
}
