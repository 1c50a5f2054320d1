// Command goban plays Go over the Go Text Protocol on stdin and stdout.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gorgonia/goban/encoding/gif"
	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/gorgonia/goban/gtp"
	"github.com/pkg/errors"
)

const version = "0.1.0"

var (
	size    = flag.Int("size", 9, "length of a side of the board")
	name    = flag.String("name", "goban", "name reported to the GTP controller")
	gifFile = flag.String("gif", "", "record the session as an animated gif")
	dotFile = flag.String("dot", "", "write the final group graph in Graphviz DOT format")
	verbose = flag.Bool("v", false, "log moves to stderr")
)

type options struct {
	size    int
	name    string
	gifFile string
	dotFile string
	verbose bool
}

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "", log.Ltime)
	opts := options{
		size:    *size,
		name:    *name,
		gifFile: *gifFile,
		dotFile: *dotFile,
		verbose: *verbose,
	}
	if err := run(opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(opts options, in io.Reader, out io.Writer, logger *log.Logger) (err error) {
	conf := wq.DefaultConfig()
	conf.Size = opts.size
	if opts.verbose {
		conf.Logger = logger
	}
	g, err := wq.New(conf)
	if err != nil {
		return err
	}

	e := gtp.New(g, opts.name, version, nil)
	e.Logger = logger

	if opts.gifFile != "" {
		var f *os.File
		f, err = os.Create(opts.gifFile)
		if err != nil {
			return errors.Wrap(err, "Unable to create gif")
		}
		enc := gif.NewEncoder(f, opts.name, 2000, 2000)
		if err := enc.Encode(g); err != nil {
			f.Close()
			return err
		}
		e.Observe = func(s game.Snapshot) {
			if err := enc.Encode(snapshot(s)); err != nil {
				logger.Printf("Unable to record frame: %v", err)
			}
		}
		defer func() {
			ferr := enc.Flush()
			if cerr := f.Close(); ferr == nil {
				ferr = errors.Wrap(cerr, "Unable to close gif")
			}
			if err == nil {
				err = ferr
			}
		}()
	}

	if err := e.Run(in, out); err != nil {
		return err
	}

	if opts.dotFile != "" {
		dot, err := e.Game().Board().ToDot()
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.dotFile, []byte(dot), 0644); err != nil {
			return errors.Wrap(err, "Unable to write dot file")
		}
	}
	return nil
}

// snapshot lets an exported game.Snapshot be encoded.
type snapshot game.Snapshot

func (s snapshot) Snapshot() game.Snapshot { return game.Snapshot(s) }
