package decoder

import (
	"encoding/json"
	"strings"
)

// Capture tools hand us either raw terminal bytes or a JSON dump of event
// fragments. Normalize accepts both: a JSON array of {"data": ...} objects,
// a JSON array of strings, or anything else as raw bytes. It is best-effort
// and never fails; malformed JSON just falls through to raw passthrough.

type parseStrategy func([]byte) ([]byte, bool)

var parseStrategies = []parseStrategy{
	parseFragmentObjects,
	parseFragmentStrings,
}

// Normalize produces the canonical byte buffer for decoding. The first
// strategy that parses wins; the fallback is always the original input.
func Normalize(data []byte) []byte {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return data
	}
	for _, parse := range parseStrategies {
		if out, ok := parse(data); ok {
			return out
		}
	}
	return data
}

func parseFragmentObjects(data []byte) ([]byte, bool) {
	var entries []struct {
		Data string `json:"data"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Data)
	}
	return []byte(sb.String()), true
}

func parseFragmentStrings(data []byte) ([]byte, bool) {
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, false
	}
	return []byte(strings.Join(parts, "")), true
}
