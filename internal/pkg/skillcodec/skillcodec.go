// Package skillcodec converts between an ordered list of skill tokens and
// the comma-delimited string form used by the candidate store.
package skillcodec

import "strings"

const delimiter = ","

// Encode joins tokens with the delimiter. An empty list encodes to "".
// Tokens containing the delimiter are not escaped and will split on decode.
func Encode(tokens []string) string {
	return strings.Join(tokens, delimiter)
}

// Decode splits text on the delimiter. An empty string decodes to an empty
// list, never to [""] — downstream code reads list length as "has skills".
func Decode(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, delimiter)
}
