package sessionid

import (
	"crypto/rand"
	"fmt"
	"io"
)

// defaultGenerator backs New.
var defaultGenerator = &Generator{cfg: *DefaultConfig()}

// Config holds the parameters of a Generator.
type Config struct {
	// Rand is the source of random bytes. It must be cryptographically
	// secure outside of tests.
	Rand io.Reader

	// Size is the number of bytes in each generated session id.
	Size int
}

// DefaultConfig returns a config reading RandomSize bytes from crypto/rand.
func DefaultConfig() *Config {
	return &Config{
		Rand: rand.Reader,
		Size: RandomSize,
	}
}

// validate checks that the config can be used to generate session ids.
func (c *Config) validate() error {
	switch {
	case c.Rand == nil:
		return fmt.Errorf("%w: nil random source", ErrInvalidConfig)

	case c.Size < 1 || c.Size > MaxSize:
		return fmt.Errorf("%w: size %d not in [1, %d]",
			ErrInvalidConfig, c.Size, MaxSize)
	}

	return nil
}

// Generator creates random session ids. It is safe for concurrent use as long
// as the configured reader is.
//
// NOTE: The zero value is not usable, generators must be created with
// NewGenerator.
type Generator struct {
	// cfg is a private copy of the config passed to NewGenerator, so later
	// changes to the caller's config have no effect.
	cfg Config
}

// NewGenerator validates cfg and returns a Generator using a copy of it.
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Generator{cfg: *cfg}, nil
}

// Generate reads a fresh session id from the configured random source. It
// returns ErrInvalidConfig when called on a Generator that was not created by
// NewGenerator.
func (g *Generator) Generate() (ID, error) {
	if err := g.cfg.validate(); err != nil {
		return ID{}, err
	}

	b := make([]byte, g.cfg.Size)
	if _, err := io.ReadFull(g.cfg.Rand, b); err != nil {
		log.Errorf("Unable to read %d random bytes for session id: %v",
			g.cfg.Size, err)

		return ID{}, fmt.Errorf("unable to read random bytes: %w", err)
	}

	sid := ID{id: string(b)}
	log.Tracef("Generated session id %v", sid)

	return sid, nil
}
