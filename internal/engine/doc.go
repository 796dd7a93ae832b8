// Package engine contains the core scanning logic for keysniff. It walks a
// directory tree depth-first, applies every registered pattern to every line
// of every file, and returns masked findings in discovery order.
package engine
