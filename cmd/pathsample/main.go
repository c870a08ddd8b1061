// Command pathsample converts a vector path into length-weighted sample
// points, writes them as x,y pairs and optionally hands them to a plotter.
//
// Usage:
//
//	pathsample [flags] [-d path | -svg file.svg | < path.txt]
//
// With -watch, the SVG file is converted again every time it is written,
// until the command is interrupted.
//
// Example:
//
//	pathsample -n 500 -d "M 20 50 L 100 50 l 50 -30 Q 300 200 350 150" -plot "python3 plot_from_file.py {}"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/mitchellh/go-homedir"

	"honnef.co/go/pathsample"
	"honnef.co/go/pathsample/internal/config"
	"honnef.co/go/pathsample/internal/plot"
	"honnef.co/go/pathsample/internal/pointfile"
	"honnef.co/go/pathsample/internal/svgdoc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		cfgFile   string
		data      string
		svgFile   string
		canonical bool
		watching  bool
		verbose   bool
	)
	def := config.Default()
	var cfg config.Config

	fs := flag.NewFlagSet("pathsample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pathsample [flags] [-d path | -svg file.svg | < path.txt]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfgFile, "config", "", "Read settings from a TOML or YAML `file`")
	fs.StringVar(&data, "d", "", "Path `data` to sample")
	fs.StringVar(&svgFile, "svg", "", "Sample the first path of an SVG `file`")
	fs.IntVar(&cfg.Budget, "n", def.Budget, "Total sample budget")
	fs.StringVar(&cfg.Dedup, "dedup", def.Dedup, "Duplicate removal: all, adjacent or none")
	fs.BoolVar(&cfg.YDown, "y-down", def.YDown, "Keep the y-down coordinates of the path data")
	fs.Float64Var(&cfg.Scale, "scale", def.Scale, "Uniformly scale the output")
	fs.IntVar(&cfg.Workers, "workers", def.Workers, "Process up to `n` curves concurrently")
	fs.StringVar(&cfg.Output, "o", def.Output, "Output point `file`, - for standard output")
	fs.StringVar(&cfg.Plot, "plot", def.Plot, "Plotter `command`; {} is replaced by the output file")
	fs.BoolVar(&canonical, "canonical", false, "Print the canonical path and exit")
	fs.BoolVar(&watching, "watch", false, "Convert again whenever the -svg file changes")
	fs.BoolVar(&verbose, "v", false, "Be verbose")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 || (data != "" && svgFile != "") || (watching && svgFile == "") {
		fs.Usage()
		return 2
	}

	dief := func(f string, v ...any) int {
		fmt.Fprintf(stderr, "pathsample: "+f, v...)
		fmt.Fprintln(stderr)
		return 1
	}

	if verbose {
		pathsample.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer pathsample.SetLogger(nil)
	}

	if err := expandHome(&cfgFile, &svgFile); err != nil {
		return dief("%s", err)
	}
	if cfgFile != "" {
		// Settings from the file apply unless overridden by a flag.
		flags := cfg
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return dief("%s", err)
		}
		cfg = loaded
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "n":
				cfg.Budget = flags.Budget
			case "dedup":
				cfg.Dedup = flags.Dedup
			case "y-down":
				cfg.YDown = flags.YDown
			case "scale":
				cfg.Scale = flags.Scale
			case "workers":
				cfg.Workers = flags.Workers
			case "o":
				cfg.Output = flags.Output
			case "plot":
				cfg.Plot = flags.Plot
			}
		})
	}

	// The output may also come from the configuration file.
	if err := expandHome(&cfg.Output); err != nil {
		return dief("%s", err)
	}

	convert := func() error {
		path, err := readPath(data, svgFile, stdin)
		if err != nil {
			return err
		}
		if canonical {
			cmds, err := pathsample.ParsePath(path)
			if err != nil {
				return err
			}
			if err := pathsample.WriteSVG(stdout, cmds, pathsample.SVGOptions{Lines: true}); err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout)
			return err
		}
		return sample(ctx, path, cfg, stdout, stderr)
	}

	if !watching {
		if err := convert(); err != nil {
			return dief("%s", err)
		}
		return 0
	}
	err := watch(ctx, svgFile, func() {
		if err := convert(); err != nil {
			fmt.Fprintf(stderr, "pathsample: %s\n", err)
		}
	})
	if err != nil {
		return dief("%s", err)
	}
	return 0
}

// sample converts path to points, writes them to the configured output and
// runs the plotter.
func sample(ctx context.Context, path string, cfg config.Config, stdout, stderr io.Writer) error {
	if cfg.Plot != "" && cfg.Output == "-" {
		return errors.New("cannot plot points written to standard output")
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	pts, err := pathsample.NewSampler(opts).Points(path)
	if err != nil {
		if !errors.Is(err, pathsample.ErrDegeneratePath) || len(pts) == 0 {
			return err
		}
		pathsample.Logger().Warn("path has zero length, writing a single point", "point", pts[0])
	}

	if cfg.Output == "-" {
		if err := pointfile.Write(stdout, pts); err != nil {
			return err
		}
	} else if err := pointfile.WriteFile(cfg.Output, pts); err != nil {
		return err
	}

	if cfg.Plot != "" {
		p, err := plot.Parse(cfg.Plot)
		if err != nil {
			return err
		}
		p.Stdout, p.Stderr = stdout, stderr
		return p.Run(ctx, cfg.Output)
	}
	return nil
}

// expandHome replaces a leading ~ in file names with the user's home
// directory.
func expandHome(names ...*string) error {
	for _, name := range names {
		expanded, err := homedir.Expand(*name)
		if err != nil {
			return err
		}
		*name = expanded
	}
	return nil
}

func readPath(data, svgFile string, stdin io.Reader) (string, error) {
	switch {
	case data != "":
		return data, nil
	case svgFile != "":
		f, err := os.Open(svgFile)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return svgdoc.PathData(f)
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
}
