// Package escape neutralises untrusted text before it is interpolated into HTML.
package escape

import "strings"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"/", "&#x2F;",
	"`", "&#x60;",
	"=", "&#x3D;",
)

// HTML replaces & < > " ' / ` = with entity equivalents. The replacement is a
// single pass, so entities produced by one call are never re-escaped by it.
func HTML(s string) string {
	return htmlReplacer.Replace(s)
}
