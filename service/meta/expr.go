package meta

import (
	"os"
	"strings"
	"unicode"
)

const envPrefix = "${env."

// expandEnvExpr substitutes ${env.NAME} with the value of NAME ("" when
// unset). NAME may hold letters, digits and '_'; anything else leaves the
// prefix in place and scanning resumes right after it. An unterminated
// expression is copied verbatim.
func expandEnvExpr(value string) string {
	if !strings.Contains(value, envPrefix) {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	for {
		offset := strings.Index(value, envPrefix)
		if offset < 0 {
			b.WriteString(value)
			return b.String()
		}
		b.WriteString(value[:offset])
		rest := value[offset+len(envPrefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			b.WriteString(value[offset:])
			return b.String()
		}
		name := rest[:end]
		if !isEnvName(name) {
			b.WriteString(envPrefix)
			value = rest
			continue
		}
		b.WriteString(os.Getenv(name))
		value = rest[end+1:]
	}
}

func isEnvName(name string) bool {
	for _, r := range name {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
