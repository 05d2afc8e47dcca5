package generation

import (
	"regexp"
	"strings"
)

const fence = "```"

var (
	// fencedBlock matches one fenced block with an optional language tag.
	// Both fences must sit on a line boundary so backticks inside JSON
	// strings are never taken for fences.
	fencedBlock = regexp.MustCompile("(?ms)^[ \\t]*```[A-Za-z0-9_+-]*[ \\t]*\\r?\\n?(.*?)```[ \\t]*\\r?$")

	// openingFence matches a fence and language tag at the start of the text.
	openingFence = regexp.MustCompile("^```[A-Za-z0-9_+-]*")
)

// Sanitize removes the wrapper markup models put around JSON replies even
// when told not to. It is applied before parsing and never inspects the
// payload itself.
//
// Contract:
//   - text wrapped in a single fenced block ("```json\n{...}\n```" or
//     "```\n{...}\n```", surrounding whitespace allowed) yields the inner
//     payload with its surrounding whitespace trimmed;
//   - a fenced block embedded in prose yields the content of the first block
//     whose opening fence begins a line;
//   - a dangling opening or closing fence is removed;
//   - any other text is returned unmodified.
func Sanitize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.Contains(trimmed, fence) {
		return raw
	}

	if m := fencedBlock.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}

	// Only one fence left: the reply was cut off or never opened.
	if strings.HasPrefix(trimmed, fence) {
		return strings.TrimSpace(openingFence.ReplaceAllString(trimmed, ""))
	}
	if strings.HasSuffix(trimmed, fence) {
		return strings.TrimSpace(strings.TrimSuffix(trimmed, fence))
	}

	return raw
}
