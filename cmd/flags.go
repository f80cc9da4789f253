package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/mmf"
	"github.com/shopspring/decimal"
)

// projectionFlags holds the flags shared by the 'compare' and 'project'
// subcommands. Amounts are kept as strings until parsed so that no precision
// is lost on the way in.
type projectionFlags struct {
	capital    string
	monthly    string
	months     int
	tax        string
	fees       bool
	date       string
	currency   string
	roundDaily bool
}

func (c *projectionFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.capital, "capital", "1000", "Initial capital to invest")
	f.StringVar(&c.monthly, "monthly", "0", "Monthly contribution, added at the start of every month after the first")
	f.IntVar(&c.months, "months", 12, "Investment period in months")
	f.StringVar(&c.tax, "tax", "15", "Withholding tax on interest, in percent")
	f.BoolVar(&c.fees, "fees", true, "Deduct the monthly management fee")
	f.StringVar(&c.date, "d", "", "Start date for the projection (defaults to today)")
	f.StringVar(&c.currency, "c", mmf.DefaultCurrency, "Reporting currency code")
	f.BoolVar(&c.roundDaily, "round-daily", false, "Round each day's interest to the currency's smallest unit")
}

// parameters parses and validates the flag values into a projection request.
func (c *projectionFlags) parameters() (*mmf.Parameters, error) {
	capital, err := decimal.NewFromString(c.capital)
	if err != nil {
		return nil, fmt.Errorf("invalid -capital value %q: %w", c.capital, err)
	}
	monthly, err := decimal.NewFromString(c.monthly)
	if err != nil {
		return nil, fmt.Errorf("invalid -monthly value %q: %w", c.monthly, err)
	}
	tax, err := decimal.NewFromString(c.tax)
	if err != nil {
		return nil, fmt.Errorf("invalid -tax value %q: %w", c.tax, err)
	}
	start := mmf.Today()
	if c.date != "" {
		start, err = mmf.ParseDate(c.date)
		if err != nil {
			return nil, fmt.Errorf("invalid -d value %q: %w", c.date, err)
		}
	}
	return mmf.NewParameters(mmf.ParameterSpec{
		InitialCapital:        capital,
		MonthlyContribution:   monthly,
		HorizonMonths:         c.months,
		WithholdingTaxPercent: tax,
		ApplyManagementFee:    c.fees,
		StartDate:             start,
		Currency:              c.currency,
		RoundDailyInterest:    c.roundDaily,
	})
}
