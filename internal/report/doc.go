// Package report persists scan findings: a cumulative JSON history and a
// plain-text log of the latest run. It also renders the console summary.
package report
