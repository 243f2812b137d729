package markdown

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type slugger struct {
	seen map[string]bool
}

func newSlugger() *slugger {
	return &slugger{seen: map[string]bool{}}
}

// slug returns a fragment id for title that has not been returned before.
// Repeats get -1, -2, ... appended.
func (s *slugger) slug(title string) string {
	base := Slug(title)
	id := base
	for i := 1; s.seen[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	s.seen[id] = true
	return id
}

// Slug lower-cases title and joins its runs of letters and digits with
// '-'. A title with neither becomes "section".
func Slug(title string) string {
	lower := cases.Lower(language.Und).String(title)
	var sb strings.Builder
	dash := false
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			dash = false
			sb.WriteRune(r)
			continue
		}
		dash = true
	}
	if sb.Len() == 0 {
		return "section"
	}
	return sb.String()
}
