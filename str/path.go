package str

import "strings"

// Basename returns the trailing name component of path, treating both "\"
// and "/" as separators. When the component ends in suffix, the suffix is cut
// off. The filesystem is never consulted and ".." has no special meaning.
//
//	Basename(`app\models\Post.php`, ".php") // → "Post"
//	Basename("/var/www/", "")               // → "www"
func Basename(path, suffix string) string {
	if suffix != "" && strings.HasSuffix(path, suffix) {
		path = path[:len(path)-len(suffix)]
	}
	path = strings.TrimRight(strings.ReplaceAll(path, `\`, "/"), "/")
	if pos := strings.LastIndexByte(path, '/'); pos >= 0 {
		return path[pos+1:]
	}
	return path
}

// Dirname returns the parent directory's path, treating both "\" and "/" as
// separators. The original separators of path are preserved in the result.
// Returns "" when path has no directory component.
func Dirname(path string) string {
	normalized := strings.TrimRight(strings.ReplaceAll(path, `\`, "/"), "/")
	if pos := strings.LastIndexByte(normalized, '/'); pos >= 0 {
		return path[:pos]
	}
	return ""
}
