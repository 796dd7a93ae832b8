// Package config loads the optional keysniff customization file from the
// working directory. It only parses; compiling patterns and merging with the
// built-in defaults happens in package patterns.
package config
