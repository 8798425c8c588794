package stream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInvalidSource = errors.New("unsupported source origin")

// Token is a single unit pulled from a source. Value is the rune code point
// of the unit, Pos is its byte offset in the original, unfiltered input.
// Filtering never renumbers positions, so Pos always maps back to the
// coordinates of the document the source was built from.
type Token struct {
	Value int64
	Pos   int64
}

// Source yields tokens one at a time. The second return value is false once
// the source is exhausted; an exhausted source stays exhausted and every
// further Next call keeps returning false. A Source is single-pass and
// single-owner: exactly one reader, no rewinding.
type Source interface {
	Next() (Token, bool)
}

// From builds a Source for a supported origin kind, resolved once at
// construction. Recognized origins: string, []byte, io.Reader and
// func() (Token, bool). Anything else fails with ErrInvalidSource.
func From(origin any) (Source, error) {
	switch o := origin.(type) {
	case string:
		return NewStringSource(o), nil
	case []byte:
		return NewReaderSource(bytes.NewReader(o)), nil
	case io.Reader:
		return NewReaderSource(o), nil
	case func() (Token, bool):
		return NewCallbackSource(o), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSource, origin)
	}
}

// StringSource iterates the runes of an in-memory string. Pos is the byte
// offset of the rune within the string.
type StringSource struct {
	r   *strings.Reader
	off int64
}

func NewStringSource(text string) *StringSource {
	return &StringSource{r: strings.NewReader(text)}
}

func (s *StringSource) Next() (Token, bool) {
	ch, size, err := s.r.ReadRune()
	if err != nil {
		return Token{}, false
	}

	t := Token{Value: int64(ch), Pos: s.off}
	s.off += int64(size)

	return t, true
}

// ReaderSource decodes runes from an arbitrary io.Reader. Pos is the byte
// offset of the rune just read, captured before the cursor advances past it.
// The source does not own the reader: closing a file-backed reader is the
// caller's responsibility and is safe to do as soon as Next returns false.
type ReaderSource struct {
	br  *bufio.Reader
	off int64
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{br: bufio.NewReader(r)}
}

func (s *ReaderSource) Next() (Token, bool) {
	ch, size, err := s.br.ReadRune()
	if err != nil {
		// io.EOF and read failures alike terminate the stream;
		// exhaustion is a value, not a fault.
		return Token{}, false
	}

	t := Token{Value: int64(ch), Pos: s.off}
	s.off += int64(size)

	return t, true
}

// CallbackSource delegates every pull to a caller-supplied producer. The
// producer fully controls values, positions and exhaustion, which lets
// callers feed pre-decoded tokens, network streams or synthetic generators.
type CallbackSource struct {
	fn func() (Token, bool)
}

func NewCallbackSource(fn func() (Token, bool)) *CallbackSource {
	return &CallbackSource{fn: fn}
}

func (s *CallbackSource) Next() (Token, bool) {
	return s.fn()
}
