package parser

import "github.com/wxmlkit/wxml/token"

// isTagNameStart reports whether c may open a tag name.
func isTagNameStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isTagNameChar reports whether c may continue a tag name.
func isTagNameChar(c rune) bool {
	return isTagNameStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == ':'
}

// isAttrNameChar reports whether c may appear in an attribute name.
func isAttrNameChar(c rune) bool {
	switch c {
	case '"', '\'', '<', '>', '/', '=':
		return false
	}

	return !token.IsWhitespace(c)
}

// isUnquotedValueChar reports whether c may appear in an unquoted
// attribute value. The run ends at whitespace, '/' or '>'.
func isUnquotedValueChar(c rune) bool {
	switch c {
	case '/', '>':
		return false
	}

	return !token.IsWhitespace(c)
}
