// Package file stores user settings in ~/.cloudcompass/config.toml.
//
// Keys are flat ("output.format") in memory and written as nested TOML
// tables, so a hand-edited file with [output] format = "json" reads back the
// same way.
package file
