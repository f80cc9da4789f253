// Package mmf provides the projection engine behind the `mmfa` command-line
// tool: it projects the growth of a cash deposit placed in one or more money
// market funds under a day-accurate compounding model, and compares competing
// funds over a user-chosen horizon.
//
// The core functionalities include:
//   - Day Accrual: daily interest computation with a flat withholding tax
//     deducted before the interest is credited.
//   - Period Settlement: one calendar month's contribution, day-by-day
//     accrual over the month's actual day count, and an average-balance
//     management fee rounded to the cash unit.
//   - Projection Engine: iterating settlement across the full horizon with
//     clamped calendar-month arithmetic, producing totals and a time series.
//   - Comparator: running the engine for every fund under identical
//     parameters, filtering by minimum investment, and ranking outcomes.
//
// All monetary arithmetic is carried in decimal end-to-end; only the final
// net-return percentage is converted to floating point for display.
package mmf
