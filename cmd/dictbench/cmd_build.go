package main

import (
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/dictbench/dictbench/internal/config"
	"github.com/dictbench/dictbench/internal/wordfreq"
	"github.com/dictbench/dictbench/pkg/util/log"
)

type buildCmd struct {
	Items []string `arg:"" help:"alternating STRUCTURE FILE_STEM pairs, e.g. avl moby-dick rbt frankenstein"`
}

// Run builds one dictionary per (structure, file_stem) pair. A single
// pair's failure (missing file, I/O error) is logged and does not abort
// the remaining pairs, matching the original driver's per-token tolerance.
func (cmd *buildCmd) Run() error {
	pairs, err := cmd.pairs()
	if err != nil {
		return err
	}

	cfg := config.Default()

	for _, p := range pairs {
		structures, err := wordfreq.Parse(p.structure)
		if err != nil {
			level.Error(log.Logger).Log("msg", "unknown structure, skipping", "structure", p.structure, "err", err)
			continue
		}

		for _, st := range structures {
			runBuild(cfg, st, p.stem)
		}
	}

	return nil
}

type structureStemPair struct {
	structure string
	stem      string
}

func (cmd *buildCmd) pairs() ([]structureStemPair, error) {
	if len(cmd.Items)%2 != 0 {
		return nil, errors.Errorf("expected alternating STRUCTURE FILE_STEM pairs, got %d arguments", len(cmd.Items))
	}
	pairs := make([]structureStemPair, 0, len(cmd.Items)/2)
	for i := 0; i < len(cmd.Items); i += 2 {
		pairs = append(pairs, structureStemPair{structure: cmd.Items[i], stem: cmd.Items[i+1]})
	}
	return pairs, nil
}

func runBuild(cfg *config.Config, st wordfreq.Structure, stem string) {
	r, err := wordfreq.Build(cfg, st, stem)
	if err != nil {
		level.Error(log.Logger).Log("msg", "build failed", "structure", st, "stem", stem, "err", err)
		return
	}

	if err := wordfreq.WriteReport(cfg, r); err != nil {
		level.Error(log.Logger).Log("msg", "writing report failed", "structure", st, "stem", stem, "err", err)
		return
	}

	level.Info(log.Logger).Log(
		"msg", "build complete",
		"structure", st,
		"stem", stem,
		"entries", r.Size,
		"comparisons", r.Comparisons,
		"rotations_or_collisions", r.RotationsOrCollisions,
		"duration", r.Duration,
	)
}
