package mmf

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNoResults is returned by Compare when every fund was either excluded or
// failed, leaving nothing to rank.
var ErrNoResults = errors.New("no valid results calculated for any fund")

// FundProjection pairs a fund with its projection outcome.
type FundProjection struct {
	Fund   Fund
	Result *ProjectionResult
}

// FundNote attaches a human-readable reason to a fund, for exclusions and
// warnings.
type FundNote struct {
	Fund   Fund
	Reason string
}

// Comparison is the outcome of running the projection over a list of funds
// under one parameter set.
type Comparison struct {
	Ranked   []FundProjection // by final balance, descending; stable on ties
	Excluded []FundNote       // filtered before projection (minimum investment)
	Warnings []FundNote       // per-fund calculation failures
}

// Best returns the top-ranked projection.
func (c *Comparison) Best() FundProjection { return c.Ranked[0] }

// Compare projects every fund under the same parameters and ranks the
// outcomes by final balance. Funds whose minimum investment exceeds the
// initial capital are excluded with a reason, not an error. Funds whose
// projection fails are reported as warnings without aborting the batch.
// ErrNoResults is returned only when zero funds produced a result.
func Compare(funds []Fund, p *Parameters) (*Comparison, error) {
	c := &Comparison{}

	capital := p.InitialCapital().Amount()
	for _, f := range funds {
		if f.MinimumInvestment().GreaterThan(capital) {
			c.Excluded = append(c.Excluded, FundNote{
				Fund:   f,
				Reason: fmt.Sprintf("requires a minimum investment of %s", M(f.MinimumInvestment(), p.Currency())),
			})
			continue
		}

		result, err := Project(f, p)
		if err != nil {
			c.Warnings = append(c.Warnings, FundNote{Fund: f, Reason: err.Error()})
			continue
		}
		c.Ranked = append(c.Ranked, FundProjection{Fund: f, Result: result})
	}

	if len(c.Ranked) == 0 {
		return nil, ErrNoResults
	}

	sort.SliceStable(c.Ranked, func(i, j int) bool {
		return c.Ranked[i].Result.FinalBalance.GreaterThan(c.Ranked[j].Result.FinalBalance)
	})
	return c, nil
}
