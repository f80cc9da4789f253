package mmf

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the reporting currency used when none is specified.
const DefaultCurrency = "KES"

// ParameterSpec enumerates the inputs of one projection run. It is the
// mutable form used at the program boundary; NewParameters validates it into
// an immutable Parameters bundle.
type ParameterSpec struct {
	InitialCapital        decimal.Decimal
	MonthlyContribution   decimal.Decimal
	HorizonMonths         int
	WithholdingTaxPercent decimal.Decimal
	ApplyManagementFee    bool
	StartDate             Date
	Currency              string // defaults to DefaultCurrency
	RoundDailyInterest    bool   // round each day's interest to the cash unit
}

// Parameters is a validated, immutable projection request, shared read-only
// across all funds being compared.
type Parameters struct {
	initialCapital      decimal.Decimal
	monthlyContribution decimal.Decimal
	horizonMonths       int
	withholdingTax      decimal.Decimal
	applyFee            bool
	startDate           Date
	currency            string
	roundDaily          bool
}

// NewParameters range-checks the spec and returns the immutable bundle.
func NewParameters(spec ParameterSpec) (*Parameters, error) {
	if !spec.InitialCapital.IsPositive() {
		return nil, fmt.Errorf("initial capital must be positive, got %s", spec.InitialCapital)
	}
	if spec.MonthlyContribution.IsNegative() {
		return nil, fmt.Errorf("monthly contribution cannot be negative, got %s", spec.MonthlyContribution)
	}
	if spec.HorizonMonths <= 0 {
		return nil, fmt.Errorf("investment period must be positive, got %d months", spec.HorizonMonths)
	}
	if spec.WithholdingTaxPercent.IsNegative() || spec.WithholdingTaxPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("withholding tax must be between 0 and 100, got %s", spec.WithholdingTaxPercent)
	}
	if spec.StartDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}
	currency := spec.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	return &Parameters{
		initialCapital:      spec.InitialCapital,
		monthlyContribution: spec.MonthlyContribution,
		horizonMonths:       spec.HorizonMonths,
		withholdingTax:      spec.WithholdingTaxPercent,
		applyFee:            spec.ApplyManagementFee,
		startDate:           spec.StartDate,
		currency:            currency,
		roundDaily:          spec.RoundDailyInterest,
	}, nil
}

// InitialCapital returns the starting deposit as money.
func (p *Parameters) InitialCapital() Money { return M(p.initialCapital, p.currency) }

// MonthlyContribution returns the periodic contribution as money.
func (p *Parameters) MonthlyContribution() Money { return M(p.monthlyContribution, p.currency) }

// HorizonMonths returns the number of calendar months projected.
func (p *Parameters) HorizonMonths() int { return p.horizonMonths }

// WithholdingTaxPercent returns the flat tax on interest, in percent.
func (p *Parameters) WithholdingTaxPercent() decimal.Decimal { return p.withholdingTax }

// ApplyManagementFee reports whether the monthly management fee is charged.
func (p *Parameters) ApplyManagementFee() bool { return p.applyFee }

// StartDate returns the first day of the projection.
func (p *Parameters) StartDate() Date { return p.startDate }

// Currency returns the reporting currency code.
func (p *Parameters) Currency() string { return p.currency }

// RoundDailyInterest reports whether each day's interest is rounded to the
// currency's smallest unit before compounding.
func (p *Parameters) RoundDailyInterest() bool { return p.roundDaily }

// EndDate returns the first day after the projected horizon.
func (p *Parameters) EndDate() Date { return p.startDate.AddMonths(p.horizonMonths) }
