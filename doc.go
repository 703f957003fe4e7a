// Package rebalance computes "lazy" rebalancing plans for a personal
// portfolio: how to invest a new contribution so that the holdings move as
// close as possible to a target allocation, without ever selling.
//
// The core functionalities include:
//   - Exact Arithmetic: Money and Fraction are arbitrary precision rationals,
//     rounding happens only when a value is displayed or persisted.
//   - Portfolio Model: assets keyed by ticker, joined from a target allocation
//     and a holdings snapshot.
//   - Solver: Solve fills the deficits of underweight assets in proportion to
//     their need, and spreads any leftover by target allocation.
//   - Projection: plans are projected into display rows and snapshot records.
//   - Data Persistence: encoding and decoding of the human edited CSV files.
//
// The solver and the model perform no I/O and hold no global state. This
// package serves as the foundation of the `lazy` command-line tool.
package rebalance
