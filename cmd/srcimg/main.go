// Command srcimg renders a source file into a PNG image with syntax
// highlighting.
//
// Usage:
//
//	srcimg [flags] <input> <output.png>
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/srcimg/srcimg"
	"github.com/srcimg/srcimg/highlight"
)

func main() {
	var (
		plain   = flag.Bool("plain", false, "disable syntax highlighting")
		verbose = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input> <output.png>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		srcimg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(flag.Arg(0), flag.Arg(1), *plain); err != nil {
		fmt.Fprintln(os.Stderr, "srcimg:", err)
		os.Exit(1)
	}
}

func run(input, output string, plain bool) error {
	f, err := os.Open(input) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var opts []srcimg.RendererOption
	if !plain {
		opts = append(opts, srcimg.WithClassifier(highlight.New()))
	}

	canvas, err := srcimg.NewRenderer(opts...).Render(f)
	if err != nil {
		return err
	}

	if err := canvas.SavePNG(output); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}
