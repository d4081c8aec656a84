package cli

import (
	"strconv"
	"strings"
	"unicode"

	"task-tracker/internal/errors"
)

// splitArgs splits the text after a verb into at most n arguments. Leading
// arguments are single words or double-quoted strings; the last one takes the
// rest of the line as typed, so descriptions, queries and passwords keep their
// inner spacing. A last argument that is one quoted string is unquoted.
func splitArgs(input string, n int) ([]string, error) {
	rest := strings.TrimSpace(input)
	if n <= 0 || rest == "" {
		return nil, nil
	}

	args := make([]string, 0, n)
	for rest != "" && len(args) < n-1 {
		arg, remainder, err := nextArg(rest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		rest = strings.TrimLeftFunc(remainder, unicode.IsSpace)
	}

	if rest != "" {
		if rest[0] == '"' {
			if quoted, err := strconv.QuotedPrefix(rest); err == nil && len(quoted) == len(rest) {
				rest, _ = strconv.Unquote(quoted)
			}
		}
		args = append(args, rest)
	}
	return args, nil
}

// splitVerb separates the command word from the rest of the line
func splitVerb(line string) (string, string) {
	line = strings.TrimSpace(line)
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return strings.ToLower(line[:i]), line[i:]
	}
	return strings.ToLower(line), ""
}

func nextArg(s string) (string, string, error) {
	if s[0] == '"' {
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", "", errors.NewInvalidInputError("arguments", s, "unterminated quoted argument")
		}
		arg, err := strconv.Unquote(quoted)
		if err != nil {
			return "", "", errors.NewInvalidInputError("arguments", s, "invalid quoted argument")
		}
		return arg, s[len(quoted):], nil
	}
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i], s[i:], nil
	}
	return s, "", nil
}
