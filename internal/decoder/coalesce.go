package decoder

import (
	"fmt"
	"strconv"
)

// accumulator merges consecutive text and cursor-forward spacing into one
// logical run, so a redrawn prompt reads as a single TXT line instead of
// dozens of fragments. State lives only for the duration of one Decode call.
type accumulator struct {
	pending []byte
	spaces  int
}

func (a *accumulator) addText(b []byte) {
	a.pending = append(a.pending, b...)
}

func (a *accumulator) addSpaces(n int) {
	for i := 0; i < n; i++ {
		a.pending = append(a.pending, ' ')
	}
	a.spaces += n
}

// flush appends one TXT line per CR/LF-delimited segment of the pending run
// and resets the accumulator. The collapsed-space annotation goes on the last
// segment only. A flush with nothing pending appends nothing.
func (a *accumulator) flush(lines []string) []string {
	if len(a.pending) == 0 && a.spaces == 0 {
		return lines
	}
	segs := splitCRLFRuns(string(a.pending))
	if len(segs) == 0 {
		segs = []string{string(a.pending)}
	}
	for i, seg := range segs {
		if i == len(segs)-1 && a.spaces > 0 {
			lines = append(lines, fmt.Sprintf("TXT %s // %dC", strconv.Quote(seg), a.spaces))
		} else {
			lines = append(lines, "TXT "+strconv.Quote(seg))
		}
	}
	a.pending = nil
	a.spaces = 0
	return lines
}

// splitCRLFRuns splits s at the end of each run of \r and \n characters.
// Each segment keeps its trailing CR/LF run; the last segment may have none.
func splitCRLFRuns(s string) []string {
	var result []string
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] != '\r' && s[i] != '\n' {
			i++
		}
		if i == len(s) {
			break
		}
		j := i
		for j < len(s) && (s[j] == '\r' || s[j] == '\n') {
			j++
		}
		result = append(result, s[:j])
		s = s[j:]
	}
	if len(s) > 0 {
		result = append(result, s)
	}
	return result
}
