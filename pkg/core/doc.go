// Package core provides a small, stable facade over keysniff's internal
// engine for other programs that want findings without the CLI's report
// files.
//
// Example:
//
//	reg, _ := core.DefaultRegistry()
//	findings, err := core.Scan(".", reg)
//	if err != nil { /* some paths were unreadable */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
