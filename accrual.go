package mmf

import "github.com/shopspring/decimal"

var (
	decOne     = decimal.NewFromInt(1)
	decTwo     = decimal.NewFromInt(2)
	decTwelve  = decimal.NewFromInt(12)
	decHundred = decimal.NewFromInt(100)
	decYear    = decimal.NewFromInt(365)
)

// DailyRate derives the fund's daily interest rate as a plain ratio:
// annual rate / 365 / 100. The fixed 365 divisor keeps the daily rate
// identical across leap years; day-accuracy comes from using each month's
// actual day count in the settlement loop, not from the divisor.
func DailyRate(f Fund) decimal.Decimal {
	return f.AnnualRate().Div(decYear).Div(decHundred)
}

// DayInterest computes one calendar day's after-tax interest on a balance:
// balance * dailyRate * (1 - tax/100). No rounding is applied here; full
// precision carries forward to the next day's base. Inputs are pre-validated
// upstream, a non-positive rate is a caller contract violation.
func DayInterest(balance Money, dailyRate, taxPercent decimal.Decimal) Money {
	return balance.Mul(dailyRate).Mul(decOne.Sub(taxPercent.Div(decHundred)))
}

// managementFee computes the monthly management fee from the average of the
// period's opening and pre-fee closing balances, rounded half-up to the
// currency's smallest unit.
func managementFee(opening, closing Money, annualFeeRate decimal.Decimal) Money {
	average := opening.Add(closing).Div(decTwo)
	return average.Mul(annualFeeRate).Div(decHundred).Div(decTwelve).RoundCash()
}

// DailyBalance is one day of the accrual trace: the day's after-tax interest
// and the balance right after it was credited.
type DailyBalance struct {
	Date     Date
	Balance  Money
	Interest Money
}

// PeriodResult is the outcome of settling one calendar month.
type PeriodResult struct {
	Label    string // calendar label of the period, e.g. "January 2024"
	Balance  Money  // closing balance, after the fee when one is charged
	Interest Money  // sum of the period's daily after-tax interest
	Fee      Money  // management fee charged, zero when fees are disabled
	Days     []DailyBalance
}

// SettleMonth applies one calendar month to an opening balance: the monthly
// contribution (for every period but the first), day-by-day interest accrual
// over the month's actual day count, and finally the management fee when
// enabled. It is a pure function of its inputs.
func SettleMonth(f Fund, p *Parameters, first Date, period int, opening Money) PeriodResult {
	days := first.DaysIn()
	dailyRate := DailyRate(f)
	tax := p.WithholdingTaxPercent()

	// The fee base is the balance before this month's contribution.
	balance := opening
	if period > 0 {
		balance = balance.Add(p.MonthlyContribution())
	}

	interest := M(0, p.Currency())
	trace := make([]DailyBalance, 0, days)
	for day := 0; day < days; day++ {
		earned := DayInterest(balance, dailyRate, tax)
		if p.RoundDailyInterest() {
			earned = earned.RoundCash()
		}
		balance = balance.Add(earned)
		interest = interest.Add(earned)
		trace = append(trace, DailyBalance{Date: first.Add(day), Balance: balance, Interest: earned})
	}

	fee := M(0, p.Currency())
	if p.ApplyManagementFee() {
		fee = managementFee(opening, balance, f.AnnualFeeRate())
		balance = balance.Sub(fee)
	}

	return PeriodResult{
		Label:    first.Label(),
		Balance:  balance,
		Interest: interest,
		Fee:      fee,
		Days:     trace,
	}
}
