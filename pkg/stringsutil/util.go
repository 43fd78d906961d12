package stringsutil

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// Truncate returns at most n characters of s, counted in runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// FuzzyPattern turns "abc" into the LIKE pattern "%a%b%c%" so that the
// characters match in order with anything in between. LIKE metacharacters
// in the input are escaped.
func FuzzyPattern(keyword string) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, r := range strings.TrimSpace(keyword) {
		switch r {
		case '%', '_', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
		b.WriteByte('%')
	}
	return b.String()
}

// ContainsPattern wraps keyword in % for a substring LIKE match.
func ContainsPattern(keyword string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(keyword)) + "%"
}
