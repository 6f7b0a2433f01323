// Package config loads addmul configuration from CUE files.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/zeebo/errs/v2"
)

// Error tags every error returned by this package.
const Error = errs.Tag("config")

// DefaultPath is read when present; it is not an error for it to be missing.
const DefaultPath = "addmul.cue"

//go:embed schema.cue
var schema []byte

// Config is the decoded configuration.
type Config struct {
	Method      string `json:"method"`
	MaxDepth    uint64 `json:"maxDepth"`
	Concurrency int    `json:"concurrency"`
	Format      string `json:"format"`
	Cases       []Case `json:"cases"`
}

// Case is a pair of operands to multiply.
type Case struct {
	X        uint64  `json:"x"`
	Y        uint64  `json:"y"`
	Expected *uint64 `json:"expected,omitempty"`
}

// Default returns the configuration with nothing but the schema applied.
func Default() (*Config, error) {
	return Load(nil, nil)
}

// Load unifies the schema with the files at paths and then the inline
// snippets, in order.
func Load(paths []string, inline []string) (*Config, error) {
	ctx := cuecontext.New()

	value := ctx.CompileBytes(schema, cue.Filename("schema.cue"))
	if err := value.Err(); err != nil {
		return nil, Error.Wrap(fmt.Errorf("compile schema: %w", err))
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, Error.Wrap(fmt.Errorf("read %s: %w", path, err))
		}
		file := ctx.CompileBytes(data, cue.Filename(path))
		if err := file.Err(); err != nil {
			return nil, Error.Wrap(fmt.Errorf("compile %s: %w", path, err))
		}
		value = value.Unify(file)
	}

	for i, src := range inline {
		name := fmt.Sprintf("inline-%d", i)
		snippet := ctx.CompileString(src, cue.Filename(name))
		if err := snippet.Err(); err != nil {
			return nil, Error.Wrap(fmt.Errorf("compile %s: %w", name, err))
		}
		value = value.Unify(snippet)
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, Error.Wrap(fmt.Errorf("validate: %w", err))
	}

	var cfg Config
	if err := value.Decode(&cfg); err != nil {
		return nil, Error.Wrap(fmt.Errorf("decode: %w", err))
	}
	return &cfg, nil
}
