package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Delimiter is the field separator. Default: ","
	Delimiter string
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Delimiter: ",",
	}
}

// NewTokenizer creates a tokenizer for comma-delimited lines.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer with custom options.
//
// Matchers are tried in order:
// 1. Line terminators (CR and LF are independent)
// 2. The delimiter
// 3. Double quote
// 4. Whitespace runs
// 5. Field content runs
// 6. A single rune that starts the delimiter but is not followed by the rest of it
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	if opts.Delimiter == "" {
		opts.Delimiter = DefaultOptions().Delimiter
	}
	lead, _ := utf8.DecodeRuneInString(opts.Delimiter)

	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenNewline, "\r"),
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),

		tokenizer.StringMatcherFunc(TokenDelimiter, opts.Delimiter),
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),

		SpaceMatcherWithDelim(lead),
		FieldContentMatcherWithDelim(lead),

		// Only reached for a partial multi-character delimiter.
		leadRuneMatcher(lead),
	)
}

// NewTokenizerForLine creates a tokenizer already initialized with a line of input.
func NewTokenizerForLine(line string, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.Initialize(line)
	return tok
}

// isStop reports whether r ends a content or whitespace run.
func isStop(r, lead rune) bool {
	return r == lead || r == '"' || r == '\n' || r == '\r'
}

// isSpace reports whether r is whitespace that may surround a field.
func isSpace(r rune) bool {
	return r != '\n' && r != '\r' && unicode.IsSpace(r)
}

// SpaceMatcherWithDelim matches runs of whitespace that do not start the delimiter.
// A tab delimiter therefore is never swallowed as padding.
func SpaceMatcherWithDelim(lead rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || isStop(r, lead) || !isSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenSpace, value)
	}
}

// FieldContentMatcher creates a matcher for field content with the default delimiter.
func FieldContentMatcher() tokenizer.Matcher {
	return FieldContentMatcherWithDelim(',')
}

// FieldContentMatcherWithDelim creates a matcher for field content.
// Matches runs of characters that are not whitespace, a quote, CR, LF or the
// first rune of the delimiter.
//
// Grammar:
//
//	Content = Character+ ;
//	Character = <any character except delimiter lead, quote, CR, LF, space> ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func FieldContentMatcherWithDelim(lead rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if lead < utf8.RuneSelf {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				if token := fieldContentMatcherByte(byteStream, lead); token != nil {
					return token
				}
			}
		}
		return fieldContentMatcherRune(stream, lead)
	}
}

// fieldContentMatcherByte scans ASCII bytes directly. It stops at the first
// multi-byte character, which the rune matcher handles.
func fieldContentMatcherByte(stream tokenizer.ByteStream, lead rune) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok {
			break
		}
		if b >= utf8.RuneSelf {
			break
		}
		r := rune(b)
		if isStop(r, lead) || isSpace(r) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenField, []rune(string(value)))
}

// fieldContentMatcherRune is the rune-based implementation.
func fieldContentMatcherRune(stream tokenizer.Stream, lead rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || isStop(r, lead) || isSpace(r) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}
	return tokenizer.NewToken(TokenField, value)
}

// leadRuneMatcher consumes one occurrence of the delimiter's first rune that
// does not start the full delimiter. A whitespace lead is padding, anything
// else is content.
func leadRuneMatcher(lead rune) tokenizer.Matcher {
	kind := TokenField
	if isSpace(lead) {
		kind = TokenSpace
	}
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != lead {
			return nil
		}
		stream.NextChar()
		return tokenizer.NewToken(kind, []rune{r})
	}
}
