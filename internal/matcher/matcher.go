// Package matcher filters the lines of an in-memory text by a plain substring query - case-sensitive or not
package matcher

import "strings"

// SearchFunc - общая сигнатура обоих фильтров, чтобы вызывающий код выбирал режим сам
type SearchFunc func(query, content string) []string

// Lines splits content on "\n" and "\r\n" without keeping the separators.
// A trailing newline does not produce an empty last line.
// Returned lines are substrings of content and share its memory, so content must stay alive as long as they do.
func Lines(content string) []string {
	result := []string{}
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 { // последняя строка без перевода строки - одиночный '\r' в ней не разделитель
			result = append(result, content)
			break
		}
		result = append(result, strings.TrimSuffix(content[:i], "\r"))
		content = content[i+1:]
	}
	return result
}

// Search returns every line of content containing query, in original order.
func Search(query, content string) []string {
	result := []string{}
	for _, line := range Lines(content) {
		if strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// SearchInsensitive works as Search, but lower-cases both query and line before the containment test.
// The returned lines keep their original casing.
// Lower-casing replaces invalid UTF-8 with U+FFFD, so an exact match is also accepted: every line Search returns is returned here too.
func SearchInsensitive(query, content string) []string {
	lowered := strings.ToLower(query)
	result := []string{}
	for _, line := range Lines(content) {
		if strings.Contains(strings.ToLower(line), lowered) || strings.Contains(line, query) {
			result = append(result, line)
		}
	}
	return result
}

// Select returns Search for a case-sensitive run and SearchInsensitive otherwise.
func Select(caseSensitive bool) SearchFunc {
	if caseSensitive {
		return Search
	}
	return SearchInsensitive
}
