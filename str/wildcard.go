package str

import (
	"strings"

	"github.com/gobwas/glob"
)

// WildcardOptions configures [MatchWildcard].
type WildcardOptions struct {
	// CaseSensitive selects case-sensitive matching. Default: true.
	CaseSensitive bool

	// Escape enables backslash escaping of "*", "?" and "\". Default: true.
	Escape bool

	// FilePath makes "*" and "?" stop at "/" and "\" so that slashes in the
	// subject only match slashes in the pattern. Default: false.
	FilePath bool
}

// DefaultWildcardOptions returns case-sensitive matching with escaping on.
func DefaultWildcardOptions() WildcardOptions {
	return WildcardOptions{CaseSensitive: true, Escape: true}
}

// MatchWildcard reports whether s matches the shell wildcard pattern.
// Supported syntax: "*", "?", "[abc]", "[a-z]" and "[!abc]". Braces have no
// special meaning. A pattern that does not compile matches nothing.
func MatchWildcard(pattern, s string, opts WildcardOptions) bool {
	if pattern == "*" && !opts.FilePath {
		return true
	}
	p := translateWildcard(pattern, opts.Escape)
	if !opts.CaseSensitive {
		p = strings.ToLower(p)
		s = strings.ToLower(s)
	}
	var separators []rune
	if opts.FilePath {
		separators = []rune{'/', '\\'}
	}
	g, err := glob.Compile(p, separators...)
	if err != nil {
		return false
	}
	return g.Match(s)
}

// translateWildcard rewrites a shell pattern into glob syntax: braces are
// escaped, runs of "*" collapse into one and, without escaping, every
// backslash becomes a literal.
func translateWildcard(pattern string, escape bool) string {
	var b strings.Builder
	b.Grow(len(pattern) + 4)
	prevStar := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && escape:
			b.WriteByte(c)
			if i+1 < len(pattern) {
				i++
				b.WriteByte(pattern[i])
			}
			prevStar = false
			continue
		case c == '\\':
			b.WriteString(`\\`)
		case c == '{' || c == '}':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '*':
			if prevStar {
				continue
			}
			b.WriteByte(c)
			prevStar = true
			continue
		default:
			b.WriteByte(c)
		}
		prevStar = false
	}
	return b.String()
}
