package mmf

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// The reference scenario from the original analysis: 16.91% annual rate,
// 0.85% management fee, 15% withholding tax, one month from 2024-01-01.
func TestProject_ReferenceScenario(t *testing.T) {
	f := testFund(t)
	p := testParameters(t, ParameterSpec{
		InitialCapital:        decimal.NewFromInt(1000),
		MonthlyContribution:   decimal.Zero,
		HorizonMonths:         1,
		WithholdingTaxPercent: decimal.NewFromInt(15),
		ApplyManagementFee:    true,
		StartDate:             NewDate(2024, time.January, 1),
	})

	result, err := Project(f, p)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	// Positive net accrual.
	if !result.FinalBalance.GreaterThan(M(1000, "KES")) {
		t.Errorf("final balance %s should exceed the initial capital", result.FinalBalance.Amount())
	}
	// Below the naive monthly-compounded figure: fee and tax reduce it.
	naive := decimal.NewFromInt(1000).Mul(decOne.Add(decimal.RequireFromString("16.91").Div(decHundred).Div(decTwelve)))
	if !result.FinalBalance.Amount().LessThan(naive) {
		t.Errorf("final balance %s should be below the naive figure %s", result.FinalBalance.Amount(), naive)
	}

	if !result.TotalContributed.Equal(M(1000, "KES")) {
		t.Errorf("total contributed = %s, want exactly 1000", result.TotalContributed.Amount())
	}
	if len(result.Daily) != 31 {
		t.Errorf("daily series has %d entries, want 31", len(result.Daily))
	}
	if result.NetReturn <= 0 {
		t.Errorf("net return = %s, want > 0", result.NetReturn)
	}
}

func TestProject_Idempotent(t *testing.T) {
	f := testFund(t)
	p := testParameters(t, ParameterSpec{
		InitialCapital:        decimal.NewFromInt(2500),
		MonthlyContribution:   decimal.NewFromInt(100),
		HorizonMonths:         18,
		WithholdingTaxPercent: decimal.NewFromInt(15),
		ApplyManagementFee:    true,
		StartDate:             NewDate(2024, time.January, 31),
	})

	a, err := Project(f, p)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	b, err := Project(f, p)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if !a.FinalBalance.Equal(b.FinalBalance) ||
		!a.TotalInterest.Equal(b.TotalInterest) ||
		!a.TotalFees.Equal(b.TotalFees) ||
		!a.TotalContributed.Equal(b.TotalContributed) ||
		a.NetReturn != b.NetReturn {
		t.Error("two projections of identical inputs differ")
	}
	if len(a.Monthly) != len(b.Monthly) || len(a.Daily) != len(b.Daily) {
		t.Fatal("series lengths differ between identical projections")
	}
	for i := range a.Monthly {
		if a.Monthly[i].Label != b.Monthly[i].Label || !a.Monthly[i].Balance.Equal(b.Monthly[i].Balance) {
			t.Fatalf("monthly series diverges at %d", i)
		}
	}
}

func TestProject_Totals(t *testing.T) {
	f := testFund(t)
	p := testParameters(t, ParameterSpec{
		InitialCapital:        decimal.NewFromInt(1000),
		MonthlyContribution:   decimal.NewFromInt(200),
		HorizonMonths:         6,
		WithholdingTaxPercent: decimal.NewFromInt(15),
		ApplyManagementFee:    true,
		StartDate:             NewDate(2024, time.March, 1),
	})

	result, err := Project(f, p)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	// capital + one contribution for every period after the first.
	want := M(1000+5*200, "KES")
	if !result.TotalContributed.Equal(want) {
		t.Errorf("total contributed = %s, want %s", result.TotalContributed.Amount(), want.Amount())
	}

	// final == contributed + interest - fees
	identity := result.TotalContributed.Add(result.TotalInterest).Sub(result.TotalFees)
	if !result.FinalBalance.Equal(identity) {
		t.Errorf("final balance = %s, want contributed+interest-fees = %s",
			result.FinalBalance.Amount(), identity.Amount())
	}

	// Opening point plus one boundary per period.
	if len(result.Monthly) != 7 {
		t.Errorf("monthly series has %d points, want 7", len(result.Monthly))
	}
	if result.Monthly[0].Label != "March 2024" {
		t.Errorf("series opens at %q, want %q", result.Monthly[0].Label, "March 2024")
	}
	if result.Monthly[6].Label != "September 2024" {
		t.Errorf("series closes at %q, want %q", result.Monthly[6].Label, "September 2024")
	}
	if !result.Monthly[0].Balance.Equal(p.InitialCapital()) {
		t.Errorf("series opens with %s, want the initial capital", result.Monthly[0].Balance.Amount())
	}
}

// Balances never decrease within a month: interest is non-negative since
// rate > 0 and tax <= 100%.
func TestProject_MonotonicDailyBalances(t *testing.T) {
	f := testFund(t)
	p := testParameters(t, ParameterSpec{
		InitialCapital:        decimal.NewFromInt(5000),
		HorizonMonths:         3,
		WithholdingTaxPercent: decimal.NewFromInt(100), // worst case: all interest withheld
		StartDate:             NewDate(2024, time.January, 1),
	})

	result, err := Project(f, p)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	prev := p.InitialCapital()
	for i, day := range result.Daily {
		if day.Balance.LessThan(prev) {
			t.Fatalf("balance decreased across day %d (%s): %s -> %s",
				i, day.Date, prev.Amount(), day.Balance.Amount())
		}
		prev = day.Balance
	}
}

// A start on Jan 31 must clamp through February: the second period opens on
// Feb 29 (leap year) and the third on Mar 29.
func TestProject_ClampedMonthBoundaries(t *testing.T) {
	f := testFund(t)
	p := testParameters(t, ParameterSpec{
		InitialCapital:        decimal.NewFromInt(1000),
		HorizonMonths:         3,
		WithholdingTaxPercent: decimal.NewFromInt(15),
		StartDate:             NewDate(2024, time.January, 31),
	})

	result, err := Project(f, p)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	// Period day counts follow the period's opening month.
	wantDays := 31 + 29 + 31 // Jan from the 31st, Feb from the 29th, Mar from the 29th
	if len(result.Daily) != wantDays {
		t.Errorf("daily series has %d entries, want %d", len(result.Daily), wantDays)
	}
	if result.Daily[31].Date != NewDate(2024, time.February, 29) {
		t.Errorf("second period opens on %s, want 2024-02-29", result.Daily[31].Date)
	}
}

func TestProject_CorruptFund(t *testing.T) {
	// A zero-value Fund bypasses construction; the engine must report it as
	// a calculation failure attributed to the fund, not crash.
	corrupt := Fund{name: "corrupt fund"}
	p := testParameters(t, ParameterSpec{
		InitialCapital:        decimal.NewFromInt(1000),
		HorizonMonths:         1,
		WithholdingTaxPercent: decimal.NewFromInt(15),
		StartDate:             NewDate(2024, time.January, 1),
	})

	_, err := Project(corrupt, p)
	var calcErr *CalculationError
	if !errors.As(err, &calcErr) {
		t.Fatalf("Project() error = %v, want *CalculationError", err)
	}
	if calcErr.Fund != "corrupt fund" {
		t.Errorf("failure attributed to %q, want %q", calcErr.Fund, "corrupt fund")
	}
}
