// Package budget provides the types and computations to tally personal
// budget sheets. It is designed to be local-first and auditable: every
// number in a report can be traced back to a row of the original
// transactions export.
//
// The core functionalities include:
//   - Export decoding: slicing a semi-structured tabular export into typed
//     expense, income and savings record sets.
//   - Categorization: grouping a record set by category and computing each
//     category's contribution to the class total.
//   - Period aggregation: combining categorized classes into one period's
//     financial summary (totals, net savings, ratios, net worth).
//   - Series accumulation: appending period summaries to a running,
//     append-only summary file and deriving the net worth trend from it.
//
// This package serves as the foundational logic for the `bgt` command-line
// tool; rendering and plotting live in the renderer and plot packages and
// only consume the result types defined here.
package budget
