// Package bundled embeds the example skills shipped with the binary.
// They are used as a fallback corpus when no skills directory exists and
// are written to disk by the init command.
package bundled

import (
	"embed"
	"io/fs"
)

//go:embed skills
var bundle embed.FS

// Skills returns the embedded skill tree rooted at the skills directory.
func Skills() fs.FS {
	sub, err := fs.Sub(bundle, "skills")
	if err != nil {
		panic(err)
	}
	return sub
}
