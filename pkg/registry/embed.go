package registry

import "embed"

// builtinDaysFS embeds the built-in day table.
//
//go:embed days/*.yml
var builtinDaysFS embed.FS
