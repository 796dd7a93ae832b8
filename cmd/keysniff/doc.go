// Package keysniff provides the command-line interface for the keysniff
// secret scanner. It parses the optional root path, loads customizations from
// the working directory, runs the scan and writes the reports.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/keysniff/keysniff/cmd/keysniff"
//	func main() { keysniff.Execute() }
package keysniff
