// Package tag strips Scrivener's inline style tags from recovered
// text. These are pseudo-markup elements like
//
//	<$ScrKeepWithNext><$Scr_H::1>blah<!$Scr_H::1>
//
// that the application embeds in the RTF body to carry style state.
package tag

import "regexp"

var scrivenerTag = regexp.MustCompile(`<!?\$Scr.*?>`)

// Strip removes all Scrivener style tags from line.
func Strip(line string) string {
	return scrivenerTag.ReplaceAllString(line, "")
}
