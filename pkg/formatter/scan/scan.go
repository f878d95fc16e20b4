// Package scan finds placeholder expressions in a message and substitutes
// resolved text back into it.
//
// A placeholder is the shortest span between a literal '{' and the next
// '}'. There is no escaping: a brace without a partner is plain text.
//
//	for expr := range scan.Placeholders("Hi {user.name}, {greeting|Hello}") {
//	    fmt.Println(expr) // user.name, then greeting|Hello
//	}
package scan

import (
	"iter"
	"regexp"
)

// placeholderPattern matches {expr} non-greedily. '.' does not cross
// newlines, so a placeholder never spans lines.
var placeholderPattern = regexp.MustCompile(`\{(.*?)\}`)

// Placeholders yields the expression of every placeholder in message, in
// order of appearance, duplicates included. The sequence can be ranged
// over any number of times.
func Placeholders(message string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(message, -1) {
			if !yield(message[loc[2]:loc[3]]) {
				return
			}
		}
	}
}

// All returns every placeholder expression in message.
func All(message string) []string {
	var exprs []string
	for expr := range Placeholders(message) {
		exprs = append(exprs, expr)
	}
	return exprs
}

// Distinct returns the placeholder expressions of message without
// duplicates, in order of first appearance.
func Distinct(message string) []string {
	seen := make(map[string]struct{})
	var exprs []string
	for expr := range Placeholders(message) {
		if _, ok := seen[expr]; ok {
			continue
		}
		seen[expr] = struct{}{}
		exprs = append(exprs, expr)
	}
	return exprs
}

// Contains reports whether message has at least one placeholder.
func Contains(message string) bool {
	return placeholderPattern.MatchString(message)
}

// Replace substitutes every placeholder of message whose expression has
// an entry in texts, in a single pass over the original message. Text put
// in is never scanned again, and placeholders without an entry stay
// verbatim.
func Replace(message string, texts map[string]string) string {
	if len(texts) == 0 {
		return message
	}
	return placeholderPattern.ReplaceAllStringFunc(message, func(match string) string {
		if text, ok := texts[match[1:len(match)-1]]; ok {
			return text
		}
		return match
	})
}
