// Command dictbench builds and compares word-frequency dictionaries across
// four associative-container implementations: AVL tree, Red-Black tree,
// chained hash table and open-addressing hash table.
package main

import (
	"github.com/alecthomas/kong"
)

type cli struct {
	Build        buildCmd        `cmd:"" help:"build one or more dictionaries from text files"`
	GeneralTest  generalTestCmd  `cmd:"" name:"general-test" help:"repeat a build N times and report timing"`
	ServeMetrics serveMetricsCmd `cmd:"" name:"serve-metrics" help:"expose build metrics over HTTP"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("dictbench"),
		kong.Description("compare AVL, RBT, chained-hash and open-hash dictionaries built from text files"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
