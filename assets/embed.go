// Package assets embeds the default word lists used when no files are configured.
package assets

import "embed"

// Embedded list names, one word per line; '#' starts a comment line.
const (
	Answers = "answers.txt"
	Allowed = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var FS embed.FS
