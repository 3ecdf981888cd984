package sqlite

import "strings"

// likeEscape is the ESCAPE character used with every LIKE built by WildcardsToLike.
const likeEscape = `\`

var wildcardReplacer = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
	`*`, `%`,
	`?`, `_`,
)

// WildcardsToLike converts a `*`/`?` wildcard pattern to a LIKE pattern.
// Literal `%`, `_` and the escape character are escaped.
func WildcardsToLike(pattern string) string {
	return wildcardReplacer.Replace(pattern)
}
