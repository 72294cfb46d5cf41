// Command foundry reads robot-factory blueprints and prints the two
// aggregate yields: the quality sum over every blueprint at horizon -a and
// the product over the first -top blueprints at horizon -b.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/foundry/blueprint"
	"github.com/katalvlaran/foundry/evaluate"
)

// modelResult is one row of the report.
type modelResult struct {
	ID      int  `json:"id"`
	Horizon int  `json:"horizon"`
	Yield   int  `json:"yield"`
	Nodes   int  `json:"nodes"`
	Cached  bool `json:"cached,omitempty"`
}

// report is the JSON-serializable result of one run.
type report struct {
	Workers    int           `json:"workers"`
	HorizonA   int           `json:"horizonA"`
	HorizonB   int           `json:"horizonB"`
	QualitySum int64         `json:"qualitySum"`
	Product    int64         `json:"product"`
	Quality    []modelResult `json:"quality"`
	Selected   []modelResult `json:"selected"`
	TimeMs     int64         `json:"timeMs"`
}

// config is the parsed command line.
type config struct {
	input   string
	format  string
	a, b    int
	top     int
	workers int
	verbose bool
	jsonOut bool
}

const usage = `Usage: foundry [flags]

Reads blueprints (one per line in puzzle wording, or JSON with -format json)
from -input or stdin.

Flags:
`

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("foundry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.input, "input", "-", "Path to the blueprint file (- for stdin)")
	fs.StringVar(&c.format, "format", "text", "Input format: text or json")
	fs.IntVar(&c.a, "a", 24, "Horizon of the quality sum (0 skips it)")
	fs.IntVar(&c.b, "b", 32, "Horizon of the product (0 skips it)")
	fs.IntVar(&c.top, "top", evaluate.DefaultProductSize, "Number of leading blueprints in the product")
	fs.IntVar(&c.workers, "workers", runtime.GOMAXPROCS(0), "Number of parallel searches")
	fs.BoolVar(&c.verbose, "v", false, "Print one progress line per search to stderr")
	fs.BoolVar(&c.jsonOut, "json", false, "Output results as JSON")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if c.format != "text" && c.format != "json" {
		return config{}, fmt.Errorf("unknown format %q", c.format)
	}
	if c.top < 0 {
		return config{}, fmt.Errorf("negative -top %d", c.top)
	}

	return c, nil
}

// load reads and parses the blueprint list.
func load(c config, stdin io.Reader) ([]*blueprint.Blueprint, error) {
	r := stdin
	if c.input != "-" && c.input != "" {
		f, err := os.Open(c.input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if c.format == "json" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return blueprint.ParseJSON(string(data))
	}

	return blueprint.ParseAll(r)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	models, err := load(c, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "Loaded %d blueprints\n", len(models))

	subset := make([]int, 0, c.top)
	for i := 0; i < c.top && i < len(models); i++ {
		subset = append(subset, models[i].ID())
	}

	opts := []evaluate.Option{evaluate.WithWorkers(c.workers), evaluate.WithLogWriter(stderr)}
	if c.verbose {
		opts = append(opts, evaluate.WithVerbose())
	}

	start := time.Now()
	s, err := evaluate.Evaluate(ctx, models, c.a, c.b, subset, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	rep := report{
		Workers:    c.workers,
		HorizonA:   c.a,
		HorizonB:   c.b,
		QualitySum: s.QualitySum,
		Product:    s.Product,
		Quality:    rows(s.Quality),
		Selected:   rows(s.Selected),
		TimeMs:     time.Since(start).Milliseconds(),
	}
	if c.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(rep); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}
	printTable(stdout, rep)

	return 0
}

func rows(yields []evaluate.ModelYield) []modelResult {
	out := make([]modelResult, len(yields))
	for i, my := range yields {
		out[i] = modelResult{ID: my.ID, Horizon: my.Horizon, Yield: my.Yield, Nodes: my.Stats.Nodes, Cached: my.Cached}
	}

	return out
}

func printTable(w io.Writer, rep report) {
	rule := strings.Repeat("-", 10) + " " + strings.Repeat("-", 8) + " " + strings.Repeat("-", 6) + " " + strings.Repeat("-", 12)
	fmt.Fprintf(w, "%-10s %8s %6s %12s\n", "Blueprint", "Horizon", "Yield", "Nodes")
	fmt.Fprintln(w, rule)
	for _, r := range append(append([]modelResult{}, rep.Quality...), rep.Selected...) {
		fmt.Fprintf(w, "%-10d %8d %6d %12d\n", r.ID, r.Horizon, r.Yield, r.Nodes)
	}
	fmt.Fprintln(w, rule)
	if rep.HorizonA != 0 {
		fmt.Fprintf(w, "quality sum @%d: %d\n", rep.HorizonA, rep.QualitySum)
	}
	if rep.HorizonB != 0 {
		fmt.Fprintf(w, "product of %d @%d: %d\n", len(rep.Selected), rep.HorizonB, rep.Product)
	}
	fmt.Fprintf(w, "time: %.1fs\n", float64(rep.TimeMs)/1000)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
