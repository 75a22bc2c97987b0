// Package str provides standalone string helpers used by the arr toolkit and
// by framework glue: locale-independent number rendering, byte-safe
// substrings, path components that treat both slash styles alike, explode
// with trimming, URL-safe base64 and shell wildcard matching.
//
//	str.FloatToString(1.5)                              // → "1.5"
//	str.NormalizeNumber("3,14", language.German)        // → "3.14"
//	str.Basename(`app\models\Post.php`, ".php")         // → "Post"
//	str.Explode(" a, b ,,c", ",", str.Trim, true)       // → [a b c]
//	str.MatchWildcard("*.go", "main.go", str.DefaultWildcardOptions())
//	str.Snake("UserName")                               // → "user_name"
//
// Every helper is a pure function and safe for concurrent use.
package str
