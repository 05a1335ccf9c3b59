// Package search rebuilds the invoice list query string as the user types.
// It is pure: the router collaborator owns the actual navigation.
package search

import "net/url"

// Rebuild returns a copy of params adjusted for a new search term: the page
// cursor always resets to 1, and the query key is set or removed depending
// on whether the term is empty. All other params pass through untouched.
func Rebuild(params url.Values, term string) url.Values {
	out := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			out.Add(k, v)
		}
	}

	out.Set("page", "1")
	if term != "" {
		out.Set("query", term)
	} else {
		out.Del("query")
	}
	return out
}
