// Package emitter writes the dataset layout document consumed by training tools.
//
// The document lists the train and val image directories of a dataset, the number
// of classes and their names:
//
//	train: ./food-101/images/train
//	val: ./food-101/images/test
//	nc: 2
//	names: ['pizza', 'sushi']
package emitter

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// outputFileMode is the permission used when the document is created.
const outputFileMode = 0o644

// structuralChars corrupt the rendered names list; rejected in strict mode.
const structuralChars = "'\"[],:#\n"

// Request describes a single emission.
type Request struct {
	// Dir is the dataset directory; it must exist when Emit is called.
	Dir string
	// Output is the document path. Its parent directory is not created.
	Output string
	// Classes are the class names; position determines the class index.
	Classes []string
}

// Emission describes a successfully written document.
type Emission struct {
	ID      string
	Path    string
	Classes int
	Bytes   int
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithStrictClassNames rejects empty class lists and class names containing
// characters that would corrupt the rendered document.
func WithStrictClassNames() Option {
	return func(e *Emitter) {
		e.strict = true
	}
}

// Emitter renders and writes dataset documents.
type Emitter struct {
	logger zerolog.Logger
	strict bool
}

// New creates an Emitter that reports every outcome to logger.
func New(logger zerolog.Logger, opts ...Option) *Emitter {
	e := &Emitter{logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strict reports whether strict class name validation is enabled.
func (e *Emitter) Strict() bool {
	return e.strict
}

// Emit validates req, writes the document and logs the outcome.
// A single attempt is made; any existing file at req.Output is overwritten.
func (e *Emitter) Emit(req Request) mo.Result[Emission] {
	emission, err := e.emit(req)
	if err != nil {
		e.logger.Error().
			Str("kind", string(KindOf(err))).
			Str("path", req.Output).
			Err(err).
			Msg("error generating dataset yaml")
		return mo.Err[Emission](err)
	}

	e.logger.Info().
		Str("path", emission.Path).
		Int("classes", emission.Classes).
		Str("emission_id", emission.ID).
		Msg("dataset yaml created")
	return mo.Ok(emission)
}

// Generate emits the document and reports only whether it succeeded.
// The failure cause is available in the logs.
func (e *Emitter) Generate(dir string, classes []string, output string) bool {
	return e.Emit(Request{Dir: dir, Classes: classes, Output: output}).IsOk()
}

func (e *Emitter) emit(req Request) (Emission, error) {
	if e.strict {
		if err := validateClassNames(req.Classes); err != nil {
			return Emission{}, newError(KindInvalidClassNames, req.Output, err)
		}
	}

	if err := checkDatasetDir(req.Dir); err != nil {
		return Emission{}, err
	}

	doc := Render(req.Dir, req.Classes)
	n, err := writeDocument(req.Output, doc)
	if err != nil {
		return Emission{}, newError(KindWriteFailure, req.Output, err)
	}

	return Emission{
		ID:      uuid.NewString(),
		Path:    req.Output,
		Classes: len(req.Classes),
		Bytes:   n,
	}, nil
}

// checkDatasetDir is advisory: the directory may vanish before the write.
func checkDatasetDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return newError(KindDatasetDirectoryMissing, dir, err)
	}
	if !info.IsDir() {
		return newError(KindDatasetDirectoryMissing, dir, fmt.Errorf("%s is not a directory", dir))
	}
	return nil
}

// writeDocument truncates path and writes doc. The file is closed on every path.
func writeDocument(path, doc string) (n int, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFileMode)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	n, err = f.WriteString(doc)
	if err != nil {
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}

func validateClassNames(classes []string) error {
	if len(classes) == 0 {
		return fmt.Errorf("at least one class name is required")
	}

	bad := lo.Filter(classes, func(name string, _ int) bool {
		return name == "" || strings.ContainsAny(name, structuralChars)
	})
	if len(bad) > 0 {
		return fmt.Errorf("class names must be non-empty and free of %q: %q", structuralChars, bad)
	}
	return nil
}
