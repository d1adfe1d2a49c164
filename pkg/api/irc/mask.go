package irc

import (
	"fmt"
	"regexp"
	"strings"
)

type Mask struct {
	Nick   string
	UserID string
	Host   string
}

func (m *Mask) String() string {
	n := m.Nick
	if len(n) == 0 {
		n = "*"
	}

	u := m.UserID
	if len(u) == 0 {
		u = "*"
	}

	h := m.Host
	if len(h) == 0 {
		h = "*"
	}

	return fmt.Sprintf("%s!%s@%s", n, u, h)
}

// Matches reports whether the mask matches the given pattern, where * matches
// any run of characters and ? matches a single character. Matching is
// case-insensitive, as nicknames and hostnames are on IRC.
func (m *Mask) Matches(pattern string) bool {
	re, err := compilePattern(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(m.String())
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.Compile(sb.String())
}

func ParseMask(mask string) *Mask {
	n := strings.Split(mask, "!")
	if len(n) != 2 {
		return nil
	}

	u := strings.Split(n[1], "@")
	if len(u) != 2 {
		return nil
	}

	return &Mask{
		Nick:   n[0],
		UserID: u[0],
		Host:   u[1],
	}
}
