// Package renderer turns projection and comparison results into markdown
// reports for the mmfa command-line tool.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/mmf"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders the full comparison report: the run parameters,
// the ranked fund table, exclusions and warnings, and the best performing
// fund's monthly progression.
func ComparisonMarkdown(c *mmf.Comparison, p *mmf.Parameters) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Analysis Results")

	parametersTable(doc, p)

	doc.H2("Fund Comparison")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Fund", "Rate", "Final Balance", "Interest", "Net Return"},
	}
	for _, fp := range c.Ranked {
		table.Rows = append(table.Rows, []string{
			fp.Fund.Name(),
			fp.Fund.AnnualRate().String() + "%",
			fp.Result.FinalBalance.String(),
			fp.Result.TotalInterest.String(),
			fp.Result.NetReturn.String(),
		})
	}
	doc.Table(table)

	if len(c.Excluded) > 0 {
		doc.H2("Excluded Funds")
		var items []string
		for _, note := range c.Excluded {
			items = append(items, fmt.Sprintf("%s: %s", note.Fund.Name(), note.Reason))
		}
		doc.BulletList(items...)
	}

	if len(c.Warnings) > 0 {
		doc.H2("Warnings")
		var items []string
		for _, note := range c.Warnings {
			items = append(items, fmt.Sprintf("%s: %s", note.Fund.Name(), note.Reason))
		}
		doc.BulletList(items...)
	}

	best := c.Best()
	doc.H2("Best Performing Fund")
	details := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Fund", best.Fund.Name()},
		Rows: [][]string{
			{"Annual Interest Rate", best.Fund.AnnualRate().String() + "%"},
		},
	}
	if p.ApplyManagementFee() {
		details.Rows = append(details.Rows, []string{"Management Fee Rate", best.Fund.AnnualFeeRate().String() + "%"})
	}
	doc.Table(details)

	progressionTable(doc, best.Result, p)
	finalResults(doc, best.Result, p)
	notes(doc, p)

	return doc.String()
}

// ProjectionMarkdown renders a single fund's projection report.
func ProjectionMarkdown(f mmf.Fund, r *mmf.ProjectionResult, p *mmf.Parameters) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projection: %s", f.Name()))

	parametersTable(doc, p)

	details := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Annual Interest Rate"), f.AnnualRate().String() + "%"},
	}
	if p.ApplyManagementFee() {
		details.Rows = append(details.Rows, []string{"Management Fee Rate", f.AnnualFeeRate().String() + "%"})
	}
	doc.Table(details)

	progressionTable(doc, r, p)
	finalResults(doc, r, p)
	notes(doc, p)

	return doc.String()
}

// CatalogMarkdown renders the fund catalog as a table.
func CatalogMarkdown(funds []mmf.Fund) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fund Catalog")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Fund", "Rate", "Mgt Fee", "Minimum Investment"},
	}
	for _, f := range funds {
		table.Rows = append(table.Rows, []string{
			f.Name(),
			f.AnnualRate().String() + "%",
			f.AnnualFeeRate().String() + "%",
			f.MinimumInvestment().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func parametersTable(doc *md.Markdown, p *mmf.Parameters) {
	doc.H2("Investment Parameters")

	fees := "Excluded"
	if p.ApplyManagementFee() {
		fees = "Included"
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Initial Capital", p.InitialCapital().String()},
			{"Monthly Contribution", p.MonthlyContribution().String()},
			{"Investment Period", fmt.Sprintf("%d months", p.HorizonMonths())},
			{"Start Date", p.StartDate().Label()},
			{"End Date", p.EndDate().Label()},
			{"Withholding Tax", p.WithholdingTaxPercent().String() + "%"},
			{"Management Fees", fees},
		},
	})
}

// progressionTable lists the monthly balance series with each period's
// actual day count.
func progressionTable(doc *md.Markdown, r *mmf.ProjectionResult, p *mmf.Parameters) {
	doc.H2("Monthly Balance Progression")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", "Days", "Balance"},
	}
	current := p.StartDate()
	for i, mb := range r.Monthly {
		table.Rows = append(table.Rows, []string{
			mb.Label,
			fmt.Sprintf("%d", current.DaysIn()),
			mb.Balance.String(),
		})
		if i < len(r.Monthly)-1 {
			current = current.AddMonths(1)
		}
	}
	doc.Table(table)
}

func finalResults(doc *md.Markdown, r *mmf.ProjectionResult, p *mmf.Parameters) {
	doc.H2("Final Results")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Final Balance"), md.Bold(r.FinalBalance.String())},
		Rows: [][]string{
			{"Total Interest Earned", r.TotalInterest.String()},
			{"Total Contribution", r.TotalContributed.String()},
			{"Net Return", r.NetReturn.String()},
		},
	}
	if p.ApplyManagementFee() {
		table.Rows = append(table.Rows, []string{"Total Fees Paid", r.TotalFees.String()})
	}
	doc.Table(table)
}

func notes(doc *md.Markdown, p *mmf.Parameters) {
	doc.H2("Notes")

	items := []string{
		"Interest is calculated daily and compounded monthly",
		fmt.Sprintf("Returns are shown after %s%% withholding tax", p.WithholdingTaxPercent()),
		"Calculations account for the actual number of days in each month",
		"Past performance does not guarantee future returns",
	}
	if p.ApplyManagementFee() {
		items = append(items, "Management fees are deducted monthly")
	}
	doc.BulletList(items...)
}
