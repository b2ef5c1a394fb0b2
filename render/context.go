package render

import (
	"io"

	"github.com/charmbracelet/log"
)

type fontKey struct {
	family string
	bold   bool
}

// Context carries state shared by the pages of one document: the font
// cache and the logger. It belongs to a single generation call and is not
// safe for concurrent use.
type Context struct {
	fonts  map[fontKey]Font
	logger *log.Logger
}

// NewContext returns an empty context. A nil logger discards output.
func NewContext(logger *log.Logger) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		fonts:  make(map[fontKey]Font),
		logger: logger,
	}
}

// Font returns the font for family and weight, embedding it on s the first
// time the pair is requested.
func (c *Context) Font(s Surface, family string, bold bool) (Font, error) {
	name := ResolveFont(family, bold)
	key := fontKey{family: string(name), bold: bold}
	if f, ok := c.fonts[key]; ok {
		return f, nil
	}
	f, err := s.EmbedFont(name)
	if err != nil {
		return Font{}, err
	}
	c.logger.Debug("embedded font", "font", name)
	c.fonts[key] = f
	return f, nil
}

// FontCount returns the number of cached fonts.
func (c *Context) FontCount() int { return len(c.fonts) }
