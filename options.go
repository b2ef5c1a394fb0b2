package pdftree

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultProducer is written to the Producer field unless overridden.
const DefaultProducer = "pdftree"

// Option is a functional option for Generate and its variants.
type Option func(*config)

type config struct {
	logger       *log.Logger
	compress     bool
	creationDate time.Time
	producer     string
}

func newConfig(opts []Option) *config {
	cfg := &config{
		compress: true,
		producer: DefaultProducer,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	return cfg
}

// WithLogger sets the logger that receives a debug entry for every
// generation step. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCompression toggles Flate compression of page content streams.
// Compression is on by default.
func WithCompression(on bool) Option {
	return func(c *config) {
		c.compress = on
	}
}

// WithCreationDate fixes the document creation date, which otherwise is
// the time of generation. A fixed date makes output reproducible.
func WithCreationDate(t time.Time) Option {
	return func(c *config) {
		c.creationDate = t
	}
}

// WithProducer sets the Producer metadata field. An empty value keeps the
// PDF engine's own producer string.
func WithProducer(p string) Option {
	return func(c *config) {
		c.producer = p
	}
}
