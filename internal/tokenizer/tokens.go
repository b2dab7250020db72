// Package tokenizer provides line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimited lines.
//
// The tokenizer emits flat character-class tokens. The parser decides where
// fields begin and end and whether a quote is opening or closing.
const (
	// Structural tokens
	TokenDelimiter = "Delimiter" // configured separator, one or more characters
	TokenDQuote    = "DQuote"    // "
	TokenNewline   = "Newline"   // a single \r or \n

	// Content tokens
	TokenSpace = "Space" // run of whitespace other than CR and LF
	TokenField = "Field" // run of field content

	// Special token
	TokenEOF = "EOF" // End of input
)
