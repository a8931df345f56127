// Package wordfreq builds a word-frequency dictionary from a text file
// using any of the four associative-container structures, replacing the
// four near-identical dictionary_* functions of the original driver with
// one build loop parameterized on Structure.
package wordfreq

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/dictbench/dictbench/internal/config"
	"github.com/dictbench/dictbench/internal/tokenizer"
	"github.com/dictbench/dictbench/pkg/dictionary/adapter"
	"github.com/dictbench/dictbench/pkg/dictionary/avltree"
	"github.com/dictbench/dictbench/pkg/dictionary/chainedhash"
	"github.com/dictbench/dictbench/pkg/dictionary/openhash"
	"github.com/dictbench/dictbench/pkg/dictionary/rbtree"
	"github.com/dictbench/dictbench/pkg/util/log"
	"github.com/dictbench/dictbench/pkg/util/metrics"
)

// Structure names one of the four associative-container implementations.
type Structure string

const (
	AVL         Structure = "avl"
	RBT         Structure = "rbt"
	ChainedHash Structure = "chained-hash"
	OpenHash    Structure = "open-hash"
)

// All lists every concrete structure (i.e. everything "all" expands to).
var All = []Structure{AVL, RBT, ChainedHash, OpenHash}

// Parse resolves a CLI-facing structure token, expanding "all" to All.
func Parse(token string) ([]Structure, error) {
	switch Structure(token) {
	case AVL, RBT, ChainedHash, OpenHash:
		return []Structure{Structure(token)}, nil
	case "all":
		return All, nil
	default:
		return nil, errors.Errorf("unknown structure %q", token)
	}
}

// Result reports the outcome of building a single dictionary.
type Result struct {
	Structure             Structure
	Stem                  string
	Size                  int
	Comparisons           uint64
	RotationsOrCollisions uint64
	Duration              time.Duration
	Report                string
}

// showable is satisfied by both adapter.TreeDictionary and
// adapter.HashDictionary.
type showable interface {
	Show(w io.Writer)
	Size() int
	Duration() time.Duration
}

// Build reads <cfg.BooksDir>/<stem>.txt, tokenizes it, accumulates word
// counts into a fresh dictionary of the given structure, and returns the
// resulting summary/report. It does not write any file; callers decide
// where the report goes.
func Build(cfg *config.Config, structure Structure, stem string) (*Result, error) {
	path := filepath.Join(cfg.BooksDir, stem+".txt")
	f, err := os.Open(path)
	if err != nil {
		metrics.BuildErrorsTotal.WithLabelValues(string(structure)).Inc()
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	words, err := tokenizer.Words(f)
	if err != nil {
		metrics.BuildErrorsTotal.WithLabelValues(string(structure)).Inc()
		return nil, errors.Wrapf(err, "tokenizing %s", path)
	}

	level.Info(log.Logger).Log("msg", "building dictionary", "structure", structure, "stem", stem, "words", len(words))

	var d showable
	var comparisons, rotationsOrCollisions uint64

	switch structure {
	case AVL:
		eng := avltree.New[string, int]()
		td := adapter.NewTree[string, int](eng)
		for _, w := range words {
			*td.Index(w)++
		}
		comparisons, rotationsOrCollisions = eng.Comparisons(), eng.Rotations()
		d = td
	case RBT:
		eng := rbtree.New[string, int]()
		td := adapter.NewTree[string, int](eng)
		for _, w := range words {
			*td.Index(w)++
		}
		comparisons, rotationsOrCollisions = eng.Comparisons(), eng.Rotations()
		d = td
	case ChainedHash:
		eng := chainedhash.NewSized[string, int](xxhash.Sum64String, cfg.InitialTableSize, cfg.MaxLoadFactor)
		hd := adapter.NewHash[string, int](eng)
		for _, w := range words {
			p, idxErr := hd.Index(w)
			if idxErr != nil {
				metrics.BuildErrorsTotal.WithLabelValues(string(structure)).Inc()
				return nil, errors.Wrap(idxErr, "indexing word")
			}
			*p++
		}
		comparisons, rotationsOrCollisions = eng.Comparisons(), eng.Collisions()
		d = hd
	case OpenHash:
		eng := openhash.NewSized[string, int](xxhash.Sum64String, cfg.InitialTableSize, cfg.MaxLoadFactor)
		hd := adapter.NewHash[string, int](eng)
		for _, w := range words {
			p, idxErr := hd.Index(w)
			if idxErr != nil {
				metrics.BuildErrorsTotal.WithLabelValues(string(structure)).Inc()
				return nil, errors.Wrap(idxErr, "indexing word")
			}
			*p++
		}
		comparisons, rotationsOrCollisions = eng.Comparisons(), eng.Collisions()
		d = hd
	default:
		metrics.BuildErrorsTotal.WithLabelValues(string(structure)).Inc()
		return nil, errors.Errorf("unknown structure %q", structure)
	}

	var sb strings.Builder
	d.Show(&sb)

	metrics.BuildsTotal.WithLabelValues(string(structure)).Inc()
	metrics.BuildDuration.WithLabelValues(string(structure)).Observe(d.Duration().Seconds())
	metrics.Comparisons.WithLabelValues(string(structure)).Set(float64(comparisons))
	metrics.RotationsOrCollisions.WithLabelValues(string(structure)).Set(float64(rotationsOrCollisions))

	return &Result{
		Structure:             structure,
		Stem:                  stem,
		Size:                  d.Size(),
		Comparisons:           comparisons,
		RotationsOrCollisions: rotationsOrCollisions,
		Duration:              d.Duration(),
		Report:                sb.String(),
	}, nil
}

// ReportPath returns the path a build's report should be written to,
// matching resultados/<stem>_<structure>.txt.
func ReportPath(cfg *config.Config, structure Structure, stem string) string {
	return filepath.Join(cfg.ResultsDir, fmt.Sprintf("%s_%s.txt", stem, structure))
}

// WriteReport writes r.Report to its ReportPath, creating cfg.ResultsDir if
// necessary.
func WriteReport(cfg *config.Config, r *Result) error {
	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", cfg.ResultsDir)
	}
	path := ReportPath(cfg, r.Structure, r.Stem)
	if err := os.WriteFile(path, []byte(r.Report), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	level.Info(log.Logger).Log("msg", "wrote report", "path", path)
	return nil
}
