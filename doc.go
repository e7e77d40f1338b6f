// Package ledger implements the general-ledger aggregation core of the
// bookkeeping module: turning double-entry journal postings into per-account
// balances and month-bucketed revenue/expense series.
//
// The core functionalities include:
//   - Chart of accounts: a typed Registry of asset, liability, equity,
//     revenue and expense accounts, sorted by account code.
//   - Journal: an immutable, chronologically sorted record of journal
//     entries and their debit/credit line items.
//   - Balance rule: the single authoritative debit/credit sign convention,
//     applied by every report instead of being re-derived at call sites.
//   - Aggregation: folding posted entries into a ledger Snapshot (one row
//     per account, zero-activity accounts included) and into calendar-month
//     revenue/expense buckets for time-series charts.
//   - Data persistence: encoding and decoding journals and account charts
//     to and from human-readable, version-controllable JSONL files, and
//     pulling entries from the portal backend's JSON export.
//
// This package serves as the foundational logic for the `glb` command-line
// tool, ensuring that every report is computed from a single source of truth.
package ledger
