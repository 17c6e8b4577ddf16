package rules

import (
	"regexp"
	"strconv"
	"strings"
)

// CatchAllMarker is the placeholder consumed as the whole argument string.
const CatchAllMarker = "$ARGUMENTS"

var (
	positionalRe = regexp.MustCompile(`\$(\d+)`)
	execRe       = regexp.MustCompile("!`([^`]+)`")
	fileRefRe    = regexp.MustCompile(`@([\w\-./]+)`)
)

var thinkingKeywords = []string{"<ultrathink>", "<megaexpertise>", "<think>", "<thinking>"}

// ArgumentUsage describes argument placeholders found in a body.
type ArgumentUsage struct {
	// CatchAll is true when the $ARGUMENTS marker appears.
	CatchAll bool

	// Positions holds every positional index referenced ($1, $2, ...),
	// in order of appearance, duplicates included.
	Positions []int
}

// Any returns true if either placeholder convention is used.
func (u ArgumentUsage) Any() bool {
	return u.CatchAll || len(u.Positions) > 0
}

// Mixed returns true when both conventions appear in the same body.
func (u ArgumentUsage) Mixed() bool {
	return u.CatchAll && len(u.Positions) > 0
}

// MaxPosition returns the highest positional index referenced, 0 if none.
func (u ArgumentUsage) MaxPosition() int {
	max := 0
	for _, n := range u.Positions {
		if n > max {
			max = n
		}
	}
	return max
}

// ArgumentMarkers scans a body for both argument placeholder conventions.
func ArgumentMarkers(body string) ArgumentUsage {
	usage := ArgumentUsage{
		CatchAll: strings.Contains(body, CatchAllMarker),
	}
	for _, m := range positionalRe.FindAllStringSubmatch(body, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			usage.Positions = append(usage.Positions, n)
		}
	}
	return usage
}

// ExecMarkers returns the inline shell commands requested with !`cmd`.
func ExecMarkers(body string) []string {
	var cmds []string
	for _, m := range execRe.FindAllStringSubmatch(body, -1) {
		cmds = append(cmds, m[1])
	}
	return cmds
}

// FileRefs returns the @path file references in a body.
func FileRefs(body string) []string {
	var refs []string
	for _, m := range fileRefRe.FindAllStringSubmatch(body, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

// ThinkingKeywords reports whether an extended-thinking keyword appears.
func ThinkingKeywords(body string) bool {
	for _, kw := range thinkingKeywords {
		if strings.Contains(body, kw) {
			return true
		}
	}
	return false
}
