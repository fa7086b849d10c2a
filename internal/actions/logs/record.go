package logs

import (
	"strconv"
	"strings"
)

// Record is one parsed log line.
type Record struct {
	Time    string            `json:"time,omitempty"`
	Level   string            `json:"level,omitempty"`
	Message string            `json:"message"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	Raw     string            `json:"raw,omitempty"`
}

// ParseRecord parses a key=value log line as written by the text handler.
// Lines without a msg key are kept whole in Raw and Message.
func ParseRecord(line string) Record {
	var r Record
	rest := strings.TrimSpace(line)

	for rest != "" {
		key, value, remainder, ok := nextPair(rest)
		if !ok {
			return Record{Message: line, Raw: line}
		}
		rest = remainder

		switch key {
		case "time":
			r.Time = value
		case "level":
			r.Level = value
		case "msg":
			r.Message = value
		default:
			if r.Attrs == nil {
				r.Attrs = make(map[string]string)
			}
			r.Attrs[key] = value
		}
	}

	if r.Level == "" && r.Message == "" {
		return Record{Message: line, Raw: line}
	}
	return r
}

// nextPair splits `key=value rest`, where value may be a quoted string.
func nextPair(s string) (key, value, rest string, ok bool) {
	eq := strings.IndexByte(s, '=')
	if eq <= 0 || strings.ContainsAny(s[:eq], " \t\"") {
		return "", "", "", false
	}
	key = s[:eq]
	s = s[eq+1:]

	if strings.HasPrefix(s, `"`) {
		prefix, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", "", "", false
		}
		value, err = strconv.Unquote(prefix)
		if err != nil {
			return "", "", "", false
		}
		return key, value, strings.TrimLeft(s[len(prefix):], " "), true
	}

	value, rest, _ = strings.Cut(s, " ")
	return key, value, strings.TrimLeft(rest, " "), true
}
