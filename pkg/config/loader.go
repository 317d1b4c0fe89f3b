package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option customises a Load call.
type Option func(*options)

type options struct {
	prefix      string
	envFiles    []string
	environment map[string]string
}

// WithPrefix only reads variables starting with prefix; struct tags omit it.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles replaces the default ".env" with the given files. Earlier
// files win over later ones; missing files are skipped.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.envFiles = paths }
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) { o.environment = vars }
}

// Load parses environment variables into v according to its `env` struct tags.
//
// Values from .env files fill in variables the environment does not already
// set; the real environment always wins. The process environment itself is
// never modified.
//
// Example:
//
//	type Settings struct {
//		LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
//		Country  string     `env:"DEFAULT_BILLING_COUNTRY" envDefault:"GB"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("PAYINPUT_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	environ := o.environment
	if environ == nil {
		environ = env.ToMap(os.Environ())
	} else {
		environ = maps.Clone(environ)
	}

	for _, path := range o.envFiles {
		values, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for key, value := range values {
			if _, set := environ[key]; !set {
				environ[key] = value
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: environ,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the program cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
