package ignore

import (
	"path/filepath"
	"regexp"
	"strings"
)

type rule struct {
	pattern  string
	re       *regexp.Regexp
	negated  bool
	dirOnly  bool
	anchored bool
}

// Matcher applies gitignore-like exclusion rules with "last rule wins"
// behavior. Rules come from --exclude flags and the config file.
type Matcher struct {
	rules []rule
}

// NewMatcher builds a matcher from user-provided exclusion globs.
// Default excludes are prepended and can be overridden by user negation rules.
func NewMatcher(userRules []string) *Matcher {
	defaultRules := []string{
		".git/",
		".DS_Store",
	}

	all := make([]string, 0, len(defaultRules)+len(userRules))
	all = append(all, defaultRules...)
	all = append(all, userRules...)

	rules := make([]rule, 0, len(all))
	for _, line := range all {
		if parsed, ok := parseRule(line); ok {
			rules = append(rules, parsed)
		}
	}

	return &Matcher{rules: rules}
}

// ShouldIgnore returns true when relPath should be excluded.
func (m *Matcher) ShouldIgnore(relPath string, isDir bool) bool {
	relPath = normalizePath(relPath)
	ignored := false
	for _, rule := range m.rules {
		if ruleMatches(rule, relPath, isDir) {
			ignored = !rule.negated
		}
	}
	return ignored
}

func parseRule(line string) (rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	parsed := rule{}
	if strings.HasPrefix(line, "!") {
		parsed.negated = true
		line = strings.TrimPrefix(line, "!")
	}
	if strings.HasPrefix(line, "/") {
		parsed.anchored = true
		line = strings.TrimPrefix(line, "/")
	}
	if strings.HasSuffix(line, "/") {
		parsed.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	line = normalizePath(line)
	if line == "" {
		return rule{}, false
	}

	re, err := regexp.Compile("^" + globToRegex(line) + "$")
	if err != nil {
		return rule{}, false
	}
	parsed.pattern = line
	parsed.re = re
	return parsed, true
}

func ruleMatches(rule rule, relPath string, isDir bool) bool {
	relPath = normalizePath(relPath)

	if rule.dirOnly {
		if matchDirectoryPattern(rule, relPath) {
			return true
		}
		if isDir && rule.re.MatchString(filepath.Base(relPath)) {
			return true
		}
		return false
	}

	if rule.anchored {
		return rule.re.MatchString(relPath)
	}

	if strings.Contains(rule.pattern, "/") {
		if rule.re.MatchString(relPath) {
			return true
		}
		parts := strings.Split(relPath, "/")
		for i := 1; i < len(parts); i++ {
			if rule.re.MatchString(strings.Join(parts[i:], "/")) {
				return true
			}
		}
		return false
	}

	if rule.re.MatchString(filepath.Base(relPath)) {
		return true
	}

	for _, segment := range strings.Split(relPath, "/") {
		if rule.re.MatchString(segment) {
			return true
		}
	}
	return false
}

func matchDirectoryPattern(rule rule, relPath string) bool {
	if rule.anchored {
		return relPath == rule.pattern || strings.HasPrefix(relPath, rule.pattern+"/")
	}

	if relPath == rule.pattern || strings.HasPrefix(relPath, rule.pattern+"/") {
		return true
	}

	parts := strings.Split(relPath, "/")
	for i := range parts {
		candidate := strings.Join(parts[:i+1], "/")
		if candidate == rule.pattern {
			return true
		}
	}
	return false
}

func globToRegex(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]

		if ch == '*' {
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				b.WriteString(".*")
				i++
				continue
			}
			b.WriteString("[^/]*")
			continue
		}

		if ch == '?' {
			b.WriteString("[^/]")
			continue
		}

		if strings.ContainsRune(`.+()|[]{}^$\\`, rune(ch)) {
			b.WriteByte('\\')
		}
		b.WriteByte(ch)
	}
	return b.String()
}

func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimPrefix(path, "/")
	return path
}
