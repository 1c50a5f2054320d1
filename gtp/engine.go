// Package gtp implements a Go Text Protocol controller over a 围碁.Game.
//
// The protocol is described in
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
package gtp

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/gorgonia/goban/game"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/pkg/errors"
)

// Engine reads GTP commands and applies them to a game.
type Engine struct {
	g *wq.Game

	known map[string]Command

	ch   chan string
	ret  chan string
	done bool

	// Observe, if set, is called with a snapshot of the game after every command that changes it.
	Observe func(game.Snapshot)
	Logger  *log.Logger

	name, version string
}

// New creates an engine for g. If known is nil, StandardLib is used.
func New(g *wq.Game, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		g:       g,
		known:   known,
		name:    name,
		version: version,
	}
}

// Start starts the engine in a goroutine. Commands are sent on input and responses are read from
// output. output is closed after a "quit" command has been answered; commands sent after that are
// discarded. Closing input stops the goroutine.
func (e *Engine) Start() (input chan<- string, output <-chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

func (e *Engine) start() {
	for cmd := range e.ch {
		if e.done {
			continue
		}
		resp, ok := e.Exec(cmd)
		if !ok {
			continue
		}
		e.ret <- resp
		if e.done {
			close(e.ret)
		}
	}
	if !e.done {
		close(e.ret)
	}
}

// Run reads commands line by line from r and writes the responses to w, until r is exhausted or
// a "quit" command is received.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		resp, ok := e.Exec(s.Text())
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, resp); err != nil {
			return errors.Wrap(err, "Unable to write response")
		}
		if e.done {
			return nil
		}
	}
	return errors.Wrap(s.Err(), "Unable to read commands")
}

// Exec executes a single command line and returns the framed response. ok is false if the line
// held no command, in which case nothing should be sent back.
func (e *Engine) Exec(cmd string) (resp string, ok bool) {
	id, x, args, err := e.parse(cmd)
	if x == nil && err == nil {
		return "", false
	}
	if err != nil {
		e.logf("%q: %v", cmd, err)
		return handleErr(id, err), true
	}
	id, result, err := x.Do(id, args, e)
	if err != nil {
		e.logf("%q: %v", cmd, err)
	}
	return handleResult(id, result, err), true
}

// Game returns the game the engine drives.
func (e *Engine) Game() *wq.Game { return e.g }

func (e *Engine) observe() {
	if e.Observe != nil {
		e.Observe(e.g.Snapshot())
	}
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return -1, nil, nil, nil
	}
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // GNUGo does nothing when there is only an ID
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

// preprocess strips comments and lowercases the command.
func preprocess(a string) string {
	if i := strings.IndexByte(a, '#'); i >= 0 {
		a = a[:i]
	}
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
