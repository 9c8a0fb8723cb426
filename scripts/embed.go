// Package scripts embeds the declaration scripts shipped with jassdoc.
package scripts

import "embed"

// FS holds the embedded .risor scripts.
//
//go:embed *.risor
var FS embed.FS

// Prelude is the path of the script declaring the JASS primitive types.
const Prelude = "prelude.risor"
