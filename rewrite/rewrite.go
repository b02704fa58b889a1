// Package rewrite implements the URL list rewriting core: protocol
// stripping, common-domain detection, and hostname replacement.
package rewrite

import (
	"net/url"
	"strings"
)

// InvalidMarker is appended to input lines that do not parse as
// absolute URLs during Replace.
const InvalidMarker = " [invalid URL]"

// StripProtocol removes a single leading "http://" or "https://"
// (case-insensitive) from a domain string. Everything else, including
// any trailing slash, path, or port, is left untouched.
func StripProtocol(domain string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if len(domain) >= len(prefix) && strings.EqualFold(domain[:len(prefix)], prefix) {
			return domain[len(prefix):]
		}
	}
	return domain
}

// parseLine parses a trimmed line as an absolute URL with a hostname.
// url.Parse accepts almost anything, so require a scheme and a host
// the way a browser URL constructor would; bare words and relative
// paths are rejected.
func parseLine(line string) (*url.URL, bool) {
	u, err := url.Parse(line)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return nil, false
	}
	return u, true
}

// splitLines splits raw input into trimmed non-empty lines, order
// preserved.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ExtractCommonDomain scans newline-separated URL text and returns
// the hostname used by a strict majority of the parseable lines, or
// by every parseable line when only one distinct hostname occurs.
// The second value is false when no suggestion can be made: empty
// input, no parseable lines, or no hostname clearing the majority
// bar. Two equally-tied hostnames yield no suggestion.
func ExtractCommonDomain(text string) (string, bool) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return "", false
	}

	counts := make(map[string]int)
	valid := 0
	best := ""
	bestCount := 0
	for _, line := range lines {
		u, ok := parseLine(line)
		if !ok {
			continue
		}
		valid++
		host := u.Hostname()
		counts[host]++
		// Strictly greater, so the first hostname seen wins a tie.
		if counts[host] > bestCount {
			best = host
			bestCount = counts[host]
		}
	}
	if valid == 0 {
		return "", false
	}
	if bestCount*2 > valid || len(counts) == 1 {
		return best, true
	}
	return "", false
}

// Result is the outcome of one Replace run over a URL list.
type Result struct {
	Output        string
	InvalidCount  int
	ReplacedCount int
}

// Replace rewrites every URL in urlsText whose hostname equals
// oldDomain (ASCII case-insensitive) to use newDomain instead,
// preserving scheme, port, path, query, and fragment. Lines that do
// not parse as absolute URLs are kept in place with InvalidMarker
// appended. Non-matching URLs pass through byte-for-byte so they
// pick up no canonicalization. Occurrences of oldDomain in a path or
// query are never touched; only the hostname component is eligible.
//
// Callers are expected to run both domains through StripProtocol and
// to reject empty inputs before calling. The output has exactly one
// line per non-empty input line, in input order.
func Replace(urlsText, oldDomain, newDomain string) Result {
	var res Result
	lines := splitLines(urlsText)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		u, ok := parseLine(line)
		if !ok {
			out = append(out, line+InvalidMarker)
			res.InvalidCount++
			continue
		}
		if !strings.EqualFold(u.Hostname(), oldDomain) {
			out = append(out, line)
			continue
		}
		if port := u.Port(); port != "" {
			u.Host = newDomain + ":" + port
		} else {
			u.Host = newDomain
		}
		out = append(out, u.String())
		res.ReplacedCount++
	}
	res.Output = strings.Join(out, "\n")
	return res
}
