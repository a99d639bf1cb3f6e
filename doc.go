// Package tvm computes time-value-of-money metrics for personal finance
// scenarios.
//
// The core functionalities include:
//   - Internal Rate of Return: the annualized rate at which a series of dated
//     cash flows grows into its current value (Analyze, IRR).
//   - Compounding: closed-form future value of a balance receiving regular
//     deposits (CompoundedGrowth, MonthlyGrowth).
//   - Drawdown and Payoff: balance of a pension pot or a mortgage after a
//     number of months, and the month at which it runs out or is repaid
//     (PensionDrawdown, MortgageRemaining, MonthsRemaining, MonthsToRepay).
//
// Every function is pure: it takes already validated numbers and returns
// numbers, or an error wrapping one of ErrInvalidInput, ErrDegenerateInput,
// ErrNonConvergence or ErrSearchExhausted. Loading cash flows from files and
// presenting results belong to the callers, see LoadCashFlows and the
// renderer package.
//
// This package serves as the foundational logic for the `ia` command-line
// tool.
package tvm
