package sku

import "fmt"

// ParseErrorCode identifies a class of SKU parse failure.
type ParseErrorCode string

const (
	// CodeInsufficientFields: fewer than two `;`-separated tokens.
	CodeInsufficientFields ParseErrorCode = "INSUFFICIENT_FIELDS"
	// CodeInvalidIdentifier: the first token is not a non-negative integer.
	CodeInvalidIdentifier ParseErrorCode = "INVALID_IDENTIFIER"
	// CodeInvalidQuality: the second token is not a known quality encoding.
	// Only surfaced by strict parsing; lenient parsing recovers it.
	CodeInvalidQuality ParseErrorCode = "INVALID_QUALITY"
	// CodeEmptyElement: an empty attribute token (consecutive or trailing
	// delimiters).
	CodeEmptyElement ParseErrorCode = "EMPTY_ELEMENT"
	// CodeUnknownAttribute: a token matching no decoder.
	CodeUnknownAttribute ParseErrorCode = "UNKNOWN_ATTRIBUTE"
	// CodeDuplicateAttribute: a singular tag repeated, or a multi-valued
	// tag decoding to a member already in its set.
	CodeDuplicateAttribute ParseErrorCode = "DUPLICATE_ATTRIBUTE"
	// CodeInvalidValue: a matched decoder received a malformed or
	// out-of-range value.
	CodeInvalidValue ParseErrorCode = "INVALID_VALUE"
)

// ParseError describes why a SKU string was rejected.
type ParseError struct {
	Code      ParseErrorCode
	Attribute string // attribute key, e.g. "killstreak tier"; empty for format errors
	Token     string // the offending token, when one exists
	Message   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsParseCode reports whether err is a *ParseError with the given code.
func IsParseCode(err error, code ParseErrorCode) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Code == code
}

func errInsufficientFields() *ParseError {
	return &ParseError{
		Code:    CodeInsufficientFields,
		Message: `SKU must begin with a defindex followed by a quality e.g. "5021;6"`,
	}
}

func errInvalidIdentifier(token string) *ParseError {
	return &ParseError{
		Code:      CodeInvalidIdentifier,
		Attribute: "defindex",
		Token:     token,
		Message:   fmt.Sprintf("defindex %q is not a non-negative integer", token),
	}
}

func errInvalidQuality(token string) *ParseError {
	return &ParseError{
		Code:      CodeInvalidQuality,
		Attribute: "quality",
		Token:     token,
		Message:   fmt.Sprintf("%q is not a valid quality", token),
	}
}

func errEmptyElement() *ParseError {
	return &ParseError{
		Code:    CodeEmptyElement,
		Message: "empty attribute token",
	}
}

func errUnknownAttribute(token string) *ParseError {
	return &ParseError{
		Code:    CodeUnknownAttribute,
		Token:   token,
		Message: fmt.Sprintf("unknown attribute %q", token),
	}
}

func errDuplicateAttribute(key, token string) *ParseError {
	return &ParseError{
		Code:      CodeDuplicateAttribute,
		Attribute: key,
		Token:     token,
		Message:   fmt.Sprintf("duplicate %s %q", key, token),
	}
}

func errInvalidValue(key, token string) *ParseError {
	return &ParseError{
		Code:      CodeInvalidValue,
		Attribute: key,
		Token:     token,
		Message:   fmt.Sprintf("%q is not a valid %s", token, key),
	}
}
