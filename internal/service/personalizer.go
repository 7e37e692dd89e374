package service

import "strings"

// Personalize substitutes recipient name placeholders into a message
// template. Placeholder keys resolve case-insensitively with spaces and
// underscores ignored, so {firstName}, {first_name}, {First Name} and
// {FIRSTNAME} all target the first name. An all-caps token renders the value
// upper-cased. Unknown tokens, and tokens whose name component is empty, are
// left verbatim. The substitution is a single forward pass: substituted
// values are never re-scanned.
func Personalize(template, firstName, lastName string) string {
	values := make(map[string]string, 3)
	if firstName != "" {
		values["firstname"] = firstName
	}
	if lastName != "" {
		values["lastname"] = lastName
	}

	fullName := strings.TrimSpace(firstName + " " + lastName)
	if fullName != "" {
		values["fullname"] = fullName
	}

	if len(values) == 0 || !strings.ContainsRune(template, '{') {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			b.WriteString(template[i:])
			break
		}
		open += i

		b.WriteString(template[i:open])

		close := strings.IndexByte(template[open:], '}')
		if close < 0 {
			b.WriteString(template[open:])
			break
		}
		close += open

		token := template[open+1 : close]
		value, ok := values[canonicalKey(token)]
		if !ok {
			b.WriteString(template[open : close+1])
			i = close + 1
			continue
		}

		if isUpperToken(token) {
			value = strings.ToUpper(value)
		}

		b.WriteString(value)
		i = close + 1
	}

	return b.String()
}

// canonicalKey lowers the token and strips spaces and underscores, mapping
// all recognized spellings of a placeholder onto one key.
func canonicalKey(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		switch {
		case r == ' ' || r == '_':
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isUpperToken reports whether the token spelling requests an upper-cased
// value: it contains letters and none of them are lower case.
func isUpperToken(token string) bool {
	hasLetter := false
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}
