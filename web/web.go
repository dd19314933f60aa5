// Package web holds the embedded templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

// Templates holds the server-rendered HTML templates.
//
//go:embed templates
var Templates embed.FS

//go:embed static
var static embed.FS

// Static returns the static asset tree rooted at its own contents.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
