package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/dictbench/dictbench/internal/config"
	"github.com/dictbench/dictbench/internal/wordfreq"
)

type generalTestCmd struct {
	Structure string `arg:"" help:"avl|rbt|chained-hash|open-hash|all"`
	Stem      string `arg:"" help:"file stem under the books directory"`
	Runs      int    `arg:"" name:"n" help:"number of times to repeat the build"`
}

// Run repeats the build N times per matched structure, keeping the timing
// of every run, writes the last run's report file as build would, and
// renders a per-run/average/total duration table.
func (cmd *generalTestCmd) Run() error {
	if cmd.Runs <= 0 {
		return errors.Errorf("n must be positive, got %d", cmd.Runs)
	}

	structures, err := wordfreq.Parse(cmd.Structure)
	if err != nil {
		return err
	}

	cfg := config.Default()

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"structure", "run", "duration"})

	for _, st := range structures {
		var total time.Duration
		var last *wordfreq.Result

		for run := 1; run <= cmd.Runs; run++ {
			r, err := wordfreq.Build(cfg, st, cmd.Stem)
			if err != nil {
				return errors.Wrapf(err, "run %d of %s", run, st)
			}
			total += r.Duration
			last = r
			w.Append([]string{string(st), strconv.Itoa(run), r.Duration.String()})
		}

		average := total / time.Duration(cmd.Runs)
		w.Append([]string{string(st), "average", average.String()})
		w.Append([]string{string(st), "total", total.String()})

		if last != nil {
			if err := wordfreq.WriteReport(cfg, last); err != nil {
				return errors.Wrapf(err, "writing report for %s", st)
			}
		}
	}

	w.Render()
	fmt.Println()
	return nil
}
