// Command cliffgen generates the Clifford-group lookup-table artifacts:
// inverse and composition tables for the 1-qubit (24 element) and 2-qubit
// (11520 element) groups, persisted as NumPy ".npy" files.
//
// The generator maps are rebuilt from the algebra and checked against the
// published constants before any table is written; a mismatch means the
// element numbering has drifted and the run aborts.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"

	"github.com/qubitkit/clifftab/clifford"
	"github.com/qubitkit/clifftab/enum"
	"github.com/qubitkit/clifftab/store"
	"github.com/qubitkit/clifftab/tables"
)

// Artifact file names under the output directory.
const (
	fileInverse1Q = "clifford_inverse_1q.npy"
	fileCompose1Q = "clifford_compose_1q.npy"
	fileInverse2Q = "clifford_inverse_2q.npy"
	baseCompose2Q = "clifford_compose_2q_sparse"
)

// config carries the parsed command line.
type config struct {
	outdir string
	snappy bool
	quiet  bool
}

func main() {
	app := cli.NewApp()
	app.Name = "cliffgen"
	app.Usage = "generate Clifford group lookup tables as .npy artifacts"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "outdir,o",
			Value: "data",
			Usage: "directory to write the table artifacts into",
		},
		cli.BoolFlag{
			Name:  "snappy",
			Usage: "compress artifacts with snappy (adds .sz suffix)",
		},
		cli.BoolFlag{
			Name:  "quiet,q",
			Usage: "suppress progress bars",
		},
	}
	app.Action = func(c *cli.Context) error {
		return run(config{
			outdir: c.String("outdir"),
			snappy: c.Bool("snappy"),
			quiet:  c.Bool("quiet"),
		})
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the full generation pipeline: small group first, then the
// large one, validating each generator map before its tables are built.
func run(cfg config) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(cfg.outdir, 0o755); err != nil {
		return err
	}
	var wopts []store.Option
	if cfg.snappy {
		wopts = append(wopts, store.WithSnappy())
	}

	if err := runOneQubit(cfg, log, wopts); err != nil {
		return err
	}

	return runTwoQubit(cfg, log, wopts)
}

// runOneQubit builds and persists the 24-element tables.
func runOneQubit(cfg config, log *slog.Logger, wopts []store.Option) error {
	log.Info("building index", "group", "1q", "elements", clifford.NumClifford1Q)
	ix, err := enum.Clifford1Q()
	if err != nil {
		return err
	}

	gens, err := tables.BuildGeneratorMap1Q(ix)
	if err != nil {
		return err
	}
	if err := gens.Validate(tables.PublishedGeneratorMap1Q); err != nil {
		return err
	}
	log.Info("generator map validated", "group", "1q", "generators", len(gens))

	inv, err := tables.Inverse(ix)
	if err != nil {
		return err
	}
	dense, err := tables.DenseCompose(ix)
	if err != nil {
		return err
	}

	p, err := store.WriteInt32(filepath.Join(cfg.outdir, fileInverse1Q), inv, wopts...)
	if err != nil {
		return err
	}
	log.Info("wrote artifact", "path", p)

	p, err = store.WriteDense(filepath.Join(cfg.outdir, fileCompose1Q), dense, wopts...)
	if err != nil {
		return err
	}
	log.Info("wrote artifact", "path", p)

	return nil
}

// runTwoQubit builds and persists the 11520-element tables. The
// composition table is generator-restricted and stored as CSR.
func runTwoQubit(cfg config, log *slog.Logger, wopts []store.Option) error {
	log.Info("building index", "group", "2q", "elements", clifford.NumClifford2Q)
	ix, err := enum.Clifford2Q()
	if err != nil {
		return err
	}

	gens, err := tables.BuildGeneratorMap2Q(ix)
	if err != nil {
		return err
	}
	if err := gens.Validate(tables.PublishedGeneratorMap2Q); err != nil {
		return err
	}
	log.Info("generator map validated", "group", "2q", "generators", len(gens), "columns", len(gens.Indices()))

	inv, err := tables.Inverse(ix, progressOption(cfg, "inverse 2q"))
	if err != nil {
		return err
	}
	csr, err := tables.SparseCompose(ix, gens, progressOption(cfg, "compose 2q"))
	if err != nil {
		return err
	}

	p, err := store.WriteInt32(filepath.Join(cfg.outdir, fileInverse2Q), inv, wopts...)
	if err != nil {
		return err
	}
	log.Info("wrote artifact", "path", p)

	written, err := store.WriteCSR(filepath.Join(cfg.outdir, baseCompose2Q), csr, wopts...)
	if err != nil {
		return err
	}
	for _, w := range written {
		log.Info("wrote artifact", "path", w)
	}

	return nil
}

// progressOption wires a terminal progress bar into a table builder. The
// bar is created on the first callback, when the total is known.
func progressOption(cfg config, desc string) tables.Option {
	if cfg.quiet {
		return nil
	}
	var bar *progressbar.ProgressBar

	return tables.WithProgress(func(done, total int) {
		if bar == nil {
			bar = progressbar.Default(int64(total), desc)
		}
		_ = bar.Add(1)
	})
}
