package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/klauspost/compress/zstd"

	"github.com/khanhtc/polyval/internal/logger"
	"github.com/khanhtc/polyval/pval"
)

// Options controls a single dump run.
type Options struct {
	Path    string // "-" means stdin
	Zstd    bool
	Quiet   bool
	Verbose bool
}

func main() {
	opts := Options{}
	flag.BoolVar(&opts.Zstd, "z", false, "input stream is zstd-compressed")
	flag.BoolVar(&opts.Quiet, "q", false, "print only the per-kind summary")
	flag.BoolVar(&opts.Verbose, "v", false, "enable debug logging")
	flag.Parse()

	opts.Path = "-"
	if flag.NArg() > 0 {
		opts.Path = flag.Arg(0)
	}
	if opts.Verbose {
		logger.SetLevel(slog.LevelDebug)
	}

	if err := run(opts); err != nil {
		logger.Error("dump failed", "path", opts.Path, "err", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	var in io.Reader = os.Stdin
	if opts.Path != "-" {
		f, err := os.Open(opts.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	if opts.Zstd {
		dec, err := zstd.NewReader(in)
		if err != nil {
			return err
		}
		defer dec.Close()
		in = dec
	}

	// counts per kind name, sorted on output
	counts := treemap.NewWithStringComparator()

	n := 0
	for {
		v, err := pval.DeserializeFrom(in)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("value %d: %w", n, err)
		}
		if !opts.Quiet {
			fmt.Printf("%d: %s\n", n, v)
		}
		kind := v.Kind().String()
		if c, ok := counts.Get(kind); ok {
			counts.Put(kind, c.(int)+1)
		} else {
			counts.Put(kind, 1)
		}
		n++
		logger.Debug("decoded value", "index", n, "kind", kind)
	}

	fmt.Printf("%d values\n", n)
	counts.Each(func(key any, value any) {
		fmt.Printf("  %-16s %d\n", key, value)
	})
	return nil
}
