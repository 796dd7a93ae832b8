package main

import "github.com/keysniff/keysniff/cmd/keysniff"

func main() { keysniff.Execute() }
