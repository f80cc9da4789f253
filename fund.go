package mmf

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Fund describes one investable money market fund: its advertised annual
// interest rate, its annual management fee rate (both percentages), and the
// minimum amount it accepts. A Fund is immutable once constructed.
type Fund struct {
	name    string
	rate    decimal.Decimal // annual interest rate, in percent
	mgtFee  decimal.Decimal // annual management fee rate, in percent
	minimum decimal.Decimal // minimum investment, in currency major units
}

// NewFund validates the fund attributes and returns the fund record.
// Invalid values fail construction, they are never clamped.
func NewFund(name string, rate, mgtFee, minimum decimal.Decimal) (Fund, error) {
	if name == "" {
		return Fund{}, fmt.Errorf("fund name must be a non-empty string")
	}
	if !rate.IsPositive() {
		return Fund{}, fmt.Errorf("invalid rate %s for fund %q: must be > 0", rate, name)
	}
	if mgtFee.IsNegative() {
		return Fund{}, fmt.Errorf("invalid management fee %s for fund %q: must be >= 0", mgtFee, name)
	}
	if minimum.IsNegative() {
		return Fund{}, fmt.Errorf("invalid minimum investment %s for fund %q: must be >= 0", minimum, name)
	}
	return Fund{name: name, rate: rate, mgtFee: mgtFee, minimum: minimum}, nil
}

// MustNewFund is like NewFund but panics on error.
func MustNewFund(name string, rate, mgtFee, minimum decimal.Decimal) Fund {
	f, err := NewFund(name, rate, mgtFee, minimum)
	if err != nil {
		panic(err.Error())
	}
	return f
}

// Name returns the fund's name.
func (f Fund) Name() string { return f.name }

// AnnualRate returns the fund's nominal annual interest rate, in percent.
func (f Fund) AnnualRate() decimal.Decimal { return f.rate }

// AnnualFeeRate returns the fund's annual management fee rate, in percent.
func (f Fund) AnnualFeeRate() decimal.Decimal { return f.mgtFee }

// MinimumInvestment returns the minimum initial amount the fund accepts,
// in currency major units.
func (f Fund) MinimumInvestment() decimal.Decimal { return f.minimum }

// jsonFund is the wire form of a fund in the native catalog file.
type jsonFund struct {
	Name              string          `json:"name"`
	Rate              decimal.Decimal `json:"rate"`
	MgtFee            decimal.Decimal `json:"mgt_fee"`
	MinimumInvestment decimal.Decimal `json:"minimum_investment"`
}

func (jf jsonFund) fund() (Fund, error) {
	return NewFund(jf.Name, jf.Rate, jf.MgtFee, jf.MinimumInvestment)
}

// DecodeFunds reads a fund catalog in its native JSON format:
//
//	{"funds": [{"name": ..., "rate": ..., "mgt_fee": ..., "minimum_investment": ...}]}
//
// Every record is validated; a single invalid record fails the whole decode.
func DecodeFunds(r io.Reader) ([]Fund, error) {
	var catalog struct {
		Funds []jsonFund `json:"funds"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("could not decode fund catalog: %w", err)
	}
	if len(catalog.Funds) == 0 {
		return nil, fmt.Errorf("fund catalog contains no funds")
	}
	funds := make([]Fund, 0, len(catalog.Funds))
	for i, jf := range catalog.Funds {
		f, err := jf.fund()
		if err != nil {
			return nil, fmt.Errorf("invalid fund record at index %d: %w", i, err)
		}
		funds = append(funds, f)
	}
	return funds, nil
}

// ExtractFunds pulls fund records out of an arbitrary provider JSON document.
// The path is a jsonpath expression selecting the list of fund objects; each
// object must carry the native attribute names (name, rate, mgt_fee,
// minimum_investment).
func ExtractFunds(r io.Reader, path string) ([]Fund, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not decode provider document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of answers,
	// or a single answer: normalize to a list here.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}
	if len(jlist) == 0 {
		return nil, fmt.Errorf("path %q selected no fund objects", path)
	}

	var funds []Fund
	for i, item := range jlist {
		// Round-trip through json to reuse the native record decoding.
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("invalid fund object at index %d: %w", i, err)
		}
		var jf jsonFund
		if err := json.Unmarshal(raw, &jf); err != nil {
			return nil, fmt.Errorf("invalid fund object at index %d: %w", i, err)
		}
		f, err := jf.fund()
		if err != nil {
			return nil, fmt.Errorf("invalid fund object at index %d: %w", i, err)
		}
		funds = append(funds, f)
	}
	return funds, nil
}

// EncodeFunds writes a fund catalog in its native JSON format, the one
// DecodeFunds reads back.
func EncodeFunds(w io.Writer, funds []Fund) error {
	catalog := struct {
		Funds []jsonFund `json:"funds"`
	}{}
	for _, f := range funds {
		catalog.Funds = append(catalog.Funds, jsonFund{
			Name:              f.name,
			Rate:              f.rate,
			MgtFee:            f.mgtFee,
			MinimumInvestment: f.minimum,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		return fmt.Errorf("could not encode fund catalog: %w", err)
	}
	return nil
}

// DefaultFunds returns the built-in fund catalog, used when no catalog file
// is available.
func DefaultFunds() []Fund {
	return []Fund{
		MustNewFund("My first example fund",
			decimal.RequireFromString("16.91"),
			decimal.RequireFromString("0.85"),
			decimal.RequireFromString("1000")),
		MustNewFund("My second example fund",
			decimal.RequireFromString("16.86"),
			decimal.RequireFromString("0.90"),
			decimal.RequireFromString("100")),
	}
}
