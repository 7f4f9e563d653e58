// Coral formats source files of the xonsh shell language,
// a superset of Python.
//
// Usage:
//
//	coral [flags] [path ...]
//
// Without paths, it formats standard input. Directories are walked
// recursively for files with the extensions configured in coral.toml
// (.xsh and .py by default).
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/Siecje/coral/format"
	"github.com/Siecje/coral/printer"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: coral [flags] [path ...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	inPlace   = flag.Bool("w", false, "write result to (source) file instead of stdout")
	list      = flag.Bool("l", false, "list files whose formatting differs from coral's")
	doDiff    = flag.Bool("d", false, "display diffs instead of rewriting files")
	check     = flag.Bool("check", false, "exit with status 1 if any file needs formatting")
	jobs      = flag.Int("j", runtime.GOMAXPROCS(0), "number of files formatted in parallel")
	colorMode = flag.String("color", "auto", "colorize diffs: auto, always, or never")
	verbose   = flag.Bool("v", false, "log each processed file")
)

func main() {
	log.SetPrefix("coral: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	colored, err := useColor(*colorMode, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	opts := options{
		write:   *inPlace,
		list:    *list,
		diff:    *doDiff,
		check:   *check,
		jobs:    *jobs,
		colored: colored,
	}

	if flag.NArg() == 0 {
		if opts.write {
			log.Fatal("cannot use -w with standard input")
		}
		proj, err := findProject(".")
		if err != nil {
			log.Fatal(err)
		}
		stdin := file{path: "<stdin>", stdin: true, cfg: proj.config(defaultConfig)}
		os.Exit(run(context.Background(), opts, []file{stdin}, os.Stdin, os.Stdout))
	}

	files, err := collect(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(run(context.Background(), opts, files, nil, os.Stdout))
}

type options struct {
	write, list, diff, check bool

	jobs    int
	colored bool
}

// A file is a file to format with its printer configuration.
type file struct {
	path  string
	perm  fs.FileMode
	stdin bool
	cfg   printer.Config
}

// collect returns the files named by paths, walking directories.
// Files named explicitly are formatted whatever their extension.
func collect(paths []string) ([]file, error) {
	var files []file
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			proj, err := findProject(filepath.Dir(path))
			if err != nil {
				return nil, err
			}
			files = append(files, file{path: path, perm: fi.Mode().Perm(), cfg: proj.config(defaultConfig)})
			continue
		}

		err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			dir := path
			if !d.IsDir() {
				dir = filepath.Dir(path)
			}
			proj, err := findProject(dir)
			if err != nil {
				return err
			}
			if proj.excluded(path) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !proj.matches(path) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			files = append(files, file{path: path, perm: info.Mode().Perm(), cfg: proj.config(defaultConfig)})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

type result struct {
	src, out []byte
	err      error
}

// run formats files in parallel and reports the results in order.
// It returns the exit status.
func run(ctx context.Context, opts options, files []file, stdin io.Reader, stdout io.Writer) int {
	results := make([]result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatFile(f, stdin)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Print(err)
		return 2
	}

	status := 0
	for i, f := range files {
		r := results[i]
		if r.err != nil {
			log.Print(r.err)
			status = 2
			continue
		}
		changed := !bytes.Equal(r.src, r.out)
		if changed && opts.check && status == 0 {
			status = 1
		}
		if err := report(stdout, opts, f, r, changed); err != nil {
			log.Print(err)
			status = 2
		}
	}
	return status
}

func formatFile(f file, stdin io.Reader) result {
	start := time.Now()
	var src []byte
	var err error
	if f.stdin {
		src, err = io.ReadAll(stdin)
	} else {
		src, err = os.ReadFile(f.path)
	}
	if err != nil {
		return result{err: err}
	}
	var out bytes.Buffer
	if err := format.Pipe(f.path, &out, bytes.NewReader(src), &f.cfg); err != nil {
		return result{err: err}
	}
	slog.Debug("formatted", "path", f.path, "duration", time.Since(start), "changed", !bytes.Equal(src, out.Bytes()))
	return result{src: src, out: out.Bytes()}
}

func report(w io.Writer, opts options, f file, r result, changed bool) error {
	if opts.list && changed {
		fmt.Fprintln(w, f.path)
	}
	if opts.diff && changed {
		printDiff(w, format.Diff(f.path, r.src, r.out), opts.colored)
	}
	switch {
	case opts.write:
		if !changed || f.stdin {
			return nil
		}
		return os.WriteFile(f.path, r.out, f.perm)
	case opts.list, opts.diff, opts.check:
		return nil
	}
	_, err := w.Write(r.out)
	return err
}

var (
	hunkColor   = color.New(color.FgCyan)
	deleteColor = color.New(color.FgRed)
	insertColor = color.New(color.FgGreen)
	headerColor = color.New(color.Bold)
)

func printDiff(w io.Writer, diff string, colored bool) {
	if !colored {
		io.WriteString(w, diff)
		return
	}
	for line := range strings.Lines(diff) {
		c := colorOf(line)
		if c == nil {
			io.WriteString(w, line)
			continue
		}
		c.EnableColor()
		c.Fprint(w, strings.TrimSuffix(line, "\n"))
		io.WriteString(w, "\n")
	}
}

func colorOf(line string) *color.Color {
	switch {
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		return headerColor
	case strings.HasPrefix(line, "@@"):
		return hunkColor
	case strings.HasPrefix(line, "-"):
		return deleteColor
	case strings.HasPrefix(line, "+"):
		return insertColor
	}
	return nil
}

// useColor reports whether diffs written to f should be colored.
func useColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}
	return false, fmt.Errorf("invalid -color value %q: want auto, always, or never", mode)
}
