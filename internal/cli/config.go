package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/lvillar/pdftree"
	"github.com/lvillar/pdftree/internal/yamlutil"
)

// DefaultConfigFile is read from the working directory when --config is
// not given.
const DefaultConfigFile = "pdftree.yaml"

// Config holds defaults read from the config file. Flags win over it.
type Config struct {
	Producer string `yaml:"producer"`
	Compress *bool  `yaml:"compress"`
	Workers  int    `yaml:"workers"`
	OutDir   string `yaml:"outDir"`
}

// loadConfig reads path. An empty path tries DefaultConfigFile and yields
// the zero Config when it does not exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	var c Config
	if err := yamlutil.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if c.Workers < 0 {
		return Config{}, fmt.Errorf("%w: %s: workers must not be negative", ErrConfig, path)
	}
	return c, nil
}

// options converts c into generator options.
func (c Config) options(logger *log.Logger) []pdftree.Option {
	opts := []pdftree.Option{pdftree.WithLogger(logger)}
	if c.Producer != "" {
		opts = append(opts, pdftree.WithProducer(c.Producer))
	}
	if c.Compress != nil {
		opts = append(opts, pdftree.WithCompression(*c.Compress))
	}
	return opts
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
