package stream

import "regexp"

// Filter drops every token whose decoded rune matches the pattern and
// forwards the rest untouched. Surviving tokens keep the positions reported
// by the wrapped source, so downstream consumers can still map results back
// to original document offsets. A Filter is itself a Source and composes
// with any other adapter.
type Filter struct {
	src     Source
	pattern *regexp.Regexp
}

func NewFilter(src Source, pattern *regexp.Regexp) *Filter {
	return &Filter{src: src, pattern: pattern}
}

func (f *Filter) Next() (Token, bool) {
	for {
		t, ok := f.src.Next()
		if !ok {
			return Token{}, false
		}

		if f.pattern.MatchString(string(rune(t.Value))) {
			continue
		}

		return t, true
	}
}
