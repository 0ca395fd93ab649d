package annotation

import (
	"strings"
)

// pair is one `key: value` entry of an aggregate option value.
type pair struct {
	key   string
	value string
}

// scanPairs reads the text-format body of an aggregate option value, such as
//
//	type: "library.example.com/Book"
//	pattern: 'publishers/{publisher}/books/{book}'
//	history: ORIGINALLY_SINGLE_PATTERN
//
// It accepts double or single quoted strings, bare values, several pairs on
// one line, optional ',' or ';' separators, '#' comments and list values
// (`pattern: ["a", "b"]`, one pair per element). Nested message values are
// skipped. The scanner never fails: anything it cannot make sense of is
// dropped.
func scanPairs(text string) []pair {
	s := &scanner{src: text}
	var pairs []pair
	for {
		s.skipSpace()
		if s.eof() {
			return pairs
		}
		key := s.ident()
		if key == "" {
			// not a key; drop one byte and resync.
			if s.peek() == '{' {
				s.skipBlock()
			} else {
				s.pos++
			}
			continue
		}
		s.skipSpace()
		switch s.peek() {
		case ':':
			s.pos++
			s.skipSpace()
		case '{', '<':
			s.skipBlock()
			continue
		default:
			continue
		}
		switch s.peek() {
		case '[':
			s.pos++
			for {
				s.skipSpace()
				if s.eof() {
					return pairs
				}
				if s.peek() == ']' {
					s.pos++
					break
				}
				if v, ok := s.value(); ok {
					pairs = append(pairs, pair{key: key, value: v})
				} else {
					s.pos++
				}
			}
		case '{', '<':
			s.skipBlock()
		default:
			if v, ok := s.value(); ok {
				pairs = append(pairs, pair{key: key, value: v})
			}
		}
	}
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

// skipSpace skips whitespace, separators and comments.
func (s *scanner) skipSpace() {
	for !s.eof() {
		switch c := s.src[s.pos]; c {
		case ' ', '\t', '\r', '\n', ',', ';':
			s.pos++
		case '#':
			for !s.eof() && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *scanner) ident() string {
	start := s.pos
	for !s.eof() {
		c := s.src[s.pos]
		if c == '_' || c == '.' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' && s.pos > start {
			s.pos++
			continue
		}
		break
	}
	return s.src[start:s.pos]
}

// value reads a quoted string, adjacent quoted strings being concatenated,
// or a bare token.
func (s *scanner) value() (string, bool) {
	if c := s.peek(); c == '"' || c == '\'' {
		var sb strings.Builder
		for {
			part, ok := s.quoted()
			if !ok {
				return sb.String(), sb.Len() > 0
			}
			sb.WriteString(part)
			save := s.pos
			s.skipWhitespace()
			if c := s.peek(); c != '"' && c != '\'' {
				s.pos = save
				return sb.String(), true
			}
		}
	}
	// bare tokens may carry pattern braces, e.g. pattern: users/{user}
	start, depth := s.pos, 0
loop:
	for ; !s.eof(); s.pos++ {
		switch s.src[s.pos] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				break loop
			}
			depth--
		case ' ', '\t', '\r', '\n', ',', ';', ']', '#':
			break loop
		}
	}
	return s.src[start:s.pos], s.pos > start
}

func (s *scanner) skipWhitespace() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// quoted reads one quoted string starting at the opening quote. An
// unterminated string runs to the end of the input.
func (s *scanner) quoted() (string, bool) {
	q := s.peek()
	if q != '"' && q != '\'' {
		return "", false
	}
	s.pos++
	var sb strings.Builder
	for !s.eof() {
		c := s.src[s.pos]
		s.pos++
		switch {
		case c == q:
			return sb.String(), true
		case c == '\\' && !s.eof():
			e := s.src[s.pos]
			s.pos++
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteByte(e)
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), true
}

// skipBlock skips a balanced {...} or <...> block starting at the opening
// delimiter. Quoted strings inside the block are honored.
func (s *scanner) skipBlock() {
	depth := 0
	for !s.eof() {
		switch c := s.peek(); c {
		case '{', '<':
			depth++
			s.pos++
		case '}', '>':
			depth--
			s.pos++
			if depth <= 0 {
				return
			}
		case '"', '\'':
			s.quoted()
		default:
			s.pos++
		}
	}
}
