package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator computes content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized markup.
	// Normalization makes checksums resilient to formatting changes.
	CalculateNormalized(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
// Markup normalization:
//  1. Remove comments (<!-- -->) outside quoted attribute values and CDATA
//  2. Collapse whitespace runs to a single space, except inside quotes and CDATA
//  3. Drop whitespace between a tag's closing '>' and the next '<'
//
// Case is preserved; SVG names and values are case-sensitive.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(c.normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

type scanState int

const (
	ssText scanState = iota
	ssTag
	ssQuote
	ssComment
	ssCDATA
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	cdataOpen    = "<![CDATA["
	cdataClose   = "]]>"
)

// normalize applies the normalization rules to markup.
func (c SHA256) normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := ssText
	var quote, last byte
	pendingSpace := false

	emit := func(s string) {
		b.WriteString(s)
		last = s[len(s)-1]
	}
	emitByte := func(ch byte) {
		b.WriteByte(ch)
		last = ch
	}

	for i := 0; i < len(content); {
		ch := content[i]

		switch state {
		case ssText, ssTag:
			switch {
			case strings.HasPrefix(content[i:], commentOpen):
				state = ssComment
				i += len(commentOpen)
				continue
			case isSpace(ch):
				pendingSpace = true
				i++
				continue
			}

			if pendingSpace && keepSpace(state, last, ch) {
				emit(" ")
			}
			pendingSpace = false

			if strings.HasPrefix(content[i:], cdataOpen) {
				emit(cdataOpen)
				state = ssCDATA
				i += len(cdataOpen)
				continue
			}

			emitByte(ch)
			switch {
			case ch == '<':
				state = ssTag
			case ch == '>':
				state = ssText
			case state == ssTag && (ch == '"' || ch == '\''):
				quote = ch
				state = ssQuote
			}
			i++

		case ssQuote:
			emitByte(ch)
			if ch == quote {
				state = ssTag
			}
			i++

		case ssComment:
			if strings.HasPrefix(content[i:], commentClose) {
				i += len(commentClose)
				state = ssText
			} else {
				i++
			}

		case ssCDATA:
			if strings.HasPrefix(content[i:], cdataClose) {
				emit(cdataClose)
				i += len(cdataClose)
				state = ssText
			} else {
				emitByte(ch)
				i++
			}
		}
	}

	return b.String()
}

// keepSpace reports whether a whitespace run between last and next is
// significant. Leading whitespace, whitespace between tags and whitespace
// before the end of a tag are not.
func keepSpace(state scanState, last, next byte) bool {
	switch {
	case last == 0:
		return false
	case last == '>' && next == '<':
		return false
	case state == ssTag && (next == '>' || next == '/'):
		return false
	case state == ssTag && last == '<':
		return false
	}
	return true
}

func isSpace(ch byte) bool {
	return ch < 0x80 && unicode.IsSpace(rune(ch))
}
