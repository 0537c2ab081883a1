package model

import "regexp"

var urlPattern = regexp.MustCompile(`https?://\S+`)

// ExtractURL returns the first http(s) URL found in text
func ExtractURL(text string) (string, bool) {
	match := urlPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// ExtractURLs returns the URL of every row that has one, in row order.
// Duplicates are kept.
func ExtractURLs(rows []DisplayRow) []string {
	var urls []string
	for _, row := range rows {
		if u, ok := ExtractURL(row.Link); ok {
			urls = append(urls, u)
		}
	}
	return urls
}
