// Package patterns holds the registry of named secret expressions and the set
// of path names skipped during traversal. A Registry is built once per run
// and is read-only afterwards.
package patterns
