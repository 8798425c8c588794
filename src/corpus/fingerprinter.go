package corpus

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/vealkind/kgram/src"
	"github.com/vealkind/kgram/src/rolling"
	"github.com/vealkind/kgram/src/stream"
)

// DocumentFingerprint is the complete fingerprint of one document: every
// k-gram hash together with the byte offsets the window spans in the
// original file. Selecting a representative subset (winnowing) is a
// downstream concern.
type DocumentFingerprint struct {
	ID     uuid.UUID
	Path   string
	Prints []rolling.Triple
}

// Fingerprinter runs the rolling-hash engine over documents of a filesystem.
// It is safe for concurrent use: every document gets its own source and
// hasher chain, the fingerprinter itself holds no mutable state.
type Fingerprinter struct {
	fs     afero.Fs
	log    src.Logger
	cfg    Config
	mode   rolling.Mode
	filter *regexp.Regexp
}

func NewFingerprinter(cfg Config, fs afero.Fs, log src.Logger) (*Fingerprinter, error) {
	mode, err := cfg.HashMode()
	if err != nil {
		return nil, err
	}

	if cfg.WindowSize < 1 {
		return nil, fmt.Errorf("%w, got %d", rolling.ErrInvalidWindowSize, cfg.WindowSize)
	}

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("worker count must be positive, got %d", cfg.Workers)
	}

	var filter *regexp.Regexp
	if cfg.FilterPattern != "" {
		filter, err = regexp.Compile(cfg.FilterPattern)
		if err != nil {
			return nil, fmt.Errorf("filter pattern: %w", err)
		}
	}

	return &Fingerprinter{
		fs:     fs,
		log:    log,
		cfg:    cfg,
		mode:   mode,
		filter: filter,
	}, nil
}

// File fingerprints a single document. The file is released when File
// returns, whether or not the stream was fully drained.
func (f *Fingerprinter) File(path string) (DocumentFingerprint, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return DocumentFingerprint{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var source stream.Source = stream.NewReaderSource(file)
	if f.filter != nil {
		source = stream.NewFilter(source, f.filter)
	}

	hasher, err := rolling.New(f.cfg.WindowSize, source, f.mode)
	if err != nil {
		return DocumentFingerprint{}, err
	}

	doc := DocumentFingerprint{
		ID:     uuid.New(),
		Path:   path,
		Prints: rolling.Drain(hasher),
	}

	f.log.Debugw("fingerprinted document",
		"path", path,
		"windows", len(doc.Prints),
		"mode", f.mode.String(),
	)

	return doc, nil
}

// Corpus fingerprints every path with at most cfg.Workers documents in
// flight. Results come back in input order; the first failure cancels the
// remaining work.
func (f *Fingerprinter) Corpus(ctx context.Context, paths []string) ([]DocumentFingerprint, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.cfg.Workers)

	docs := make([]DocumentFingerprint, len(paths))

	for i, path := range paths {
		i, path := i, path

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := f.File(path)
			if err != nil {
				return err
			}

			docs[i] = doc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	f.log.Infow("fingerprinted corpus", "documents", len(docs))

	return docs, nil
}
