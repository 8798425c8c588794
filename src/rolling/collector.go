package rolling

// Drain runs the hasher to exhaustion and returns every emitted triple in
// emission order. It fully consumes the underlying source; draining an
// already exhausted hasher yields nil. Must not be used on an infinite
// source.
func Drain(h *Hasher) []Triple {
	var out []Triple

	for {
		t, ok := h.Advance()
		if !ok {
			return out
		}

		out = append(out, t)
	}
}
