package attribute

import (
	"strconv"
	"strings"
	"time"
)

// ControlsList trims the default media controls.
type ControlsList struct {
	NoDownload       bool
	NoFullscreen     bool
	NoRemotePlayback bool
}

func (c ControlsList) String() string {
	var tokens []string
	if c.NoDownload {
		tokens = append(tokens, "nodownload")
	}
	if c.NoFullscreen {
		tokens = append(tokens, "nofullscreen")
	}
	if c.NoRemotePlayback {
		tokens = append(tokens, "noremoteplayback")
	}
	return strings.Join(tokens, " ")
}

// Candidate is one image candidate of a srcset.
type Candidate struct {
	URL Href
	// Descriptor is a width ("640w") or density ("2x") descriptor.
	Descriptor string
}

// Srcset is a list of image candidates.
type Srcset []Candidate

func (s Srcset) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s {
		if c.URL == "" {
			continue
		}
		if c.Descriptor == "" {
			parts = append(parts, string(c.URL))
			continue
		}
		parts = append(parts, string(c.URL)+" "+c.Descriptor)
	}
	return strings.Join(parts, ", ")
}

// Coords are the coordinates of an <area> shape.
type Coords []int

func (c Coords) String() string {
	parts := make([]string, 0, len(c))
	for _, v := range c {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

// Datetime is a machine readable date, time or duration.
type Datetime string

// DatetimeOf formats t as a global date and time string.
func DatetimeOf(t time.Time) Datetime {
	return Datetime(t.Format(time.RFC3339))
}

// DateOf formats the calendar date of t.
func DateOf(t time.Time) Datetime {
	return Datetime(t.Format(time.DateOnly))
}

func (d Datetime) String() string { return string(d) }

// Elementtiming registers an element with the Element Timing API.
type Elementtiming string

// Timing builds an identifier of the form category-name.
func Timing(category, name string) Elementtiming {
	if category == "" {
		return Elementtiming(name)
	}
	return Elementtiming(category + "-" + name)
}

func (e Elementtiming) String() string { return string(e) }
