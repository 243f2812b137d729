package attribute

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/language"
)

// Charset is a character encoding name.
type Charset string

// UTF8 is the only encoding new documents should declare.
const UTF8 Charset = "utf-8"

// NewCharset resolves label through the WHATWG encoding index so that
// aliases such as "utf8" or "latin1" come out canonical. Unknown labels are
// kept as given, lower-cased.
func NewCharset(label string) Charset {
	label = strings.ToLower(strings.TrimSpace(label))
	enc, err := htmlindex.Get(label)
	if err != nil {
		return Charset(label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return Charset(label)
	}
	return Charset(name)
}

func (c Charset) String() string { return string(c) }

// Nonce is a cryptographic nonce for Content Security Policy.
type Nonce string

// NewNonce returns a fresh random nonce.
func NewNonce() Nonce {
	return Nonce(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func (n Nonce) String() string { return string(n) }

// SetLanguage sets name to the BCP 47 form of tag. language.Und is unset.
func (l *List) SetLanguage(name string, tag language.Tag) {
	if tag == language.Und {
		return
	}
	l.Set(name, tag.String())
}

// Language parses a BCP 47 tag, returning language.Und when s is not
// well-formed.
func Language(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}
