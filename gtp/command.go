package gtp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
)

// Command is a GTP command. Do returns the ID of the command and its result.
type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	cmds := make([]string, 0, len(e.known))
	for c := range e.known {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)

	var buf bytes.Buffer
	for i, c := range cmds {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(c)
	}
	return buf.String()
}

func quit(e *Engine) string      { e.done = true; return "" }
func showboard(e *Engine) string { return "\n" + strings.TrimSuffix(fmt.Sprintf("%s", e.g), "\n") }

func territory(e *Engine) string {
	return "\n" + strings.TrimSuffix(fmt.Sprintf("%s", e.g.Territory()), "\n")
}

func clearBoard(e *Engine, args []string) (string, error) {
	if err := e.g.NewGame(e.g.BoardSize()); err != nil {
		return "", err
	}
	e.observe()
	return "", nil
}

func undo(e *Engine, args []string) (string, error) {
	if err := e.g.Undo(); err != nil {
		return "", errors.WithMessage(err, "cannot undo")
	}
	e.observe()
	return "", nil
}

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
	}
	if err := e.g.NewGame(size); err != nil {
		return "", errors.New("unacceptable size")
	}
	e.observe()
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	colour, err := parseColour(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "syntax error")
	}
	c, err := parseVertex(args[1], e.g.BoardSize())
	if err != nil {
		return "", errors.WithMessage(err, "syntax error")
	}

	if c.IsPass() {
		if !e.g.Ended() {
			e.g.SetToMove(game.Player(colour))
		}
		err = e.g.Pass()
	} else {
		err = e.g.PlaceAs(int(c.X), int(c.Y), colour)
	}
	if err != nil {
		return "", err
	}
	e.observe()
	return "", nil
}

func markTerritory(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"mark_territory\"")
	}
	c, err := parseVertex(args[0], e.g.BoardSize())
	if err != nil {
		return "", errors.WithMessage(err, "syntax error")
	}
	if c.IsPass() {
		return "", errors.New("Cannot mark a pass")
	}
	if err := e.g.MarkTerritory(int(c.X), int(c.Y)); err != nil {
		return "", err
	}
	e.observe()
	return "", nil
}

// finalScore reports the score in the GTP format: "B+3", "W+12" or "0".
func finalScore(e *Engine, args []string) (string, error) {
	if !e.g.Ended() {
		return "", errors.New("cannot score")
	}
	s := e.g.Scores()
	switch {
	case s[0] > s[1]:
		return fmt.Sprintf("B+%d", s[0]-s[1]), nil
	case s[1] > s[0]:
		return fmt.Sprintf("W+%d", s[1]-s[0]), nil
	}
	return "0", nil
}

func snapshot(e *Engine, args []string) (string, error) {
	bs, err := json.Marshal(e.g.Snapshot())
	if err != nil {
		return "", errors.Wrap(err, "Unable to marshal snapshot")
	}
	return string(bs), nil
}

func lastMove(e *Engine, args []string) (string, error) {
	m := e.g.LastMove()
	if !game.IsValid(m.Player) {
		return "", errors.New("no moves played")
	}
	return fmt.Sprintf("%v %s", colourName(m.Player), formatVertex(m.Coord, e.g.BoardSize())), nil
}

func colourName(p game.Player) string {
	if game.Colour(p) == game.White {
		return "white"
	}
	return "black"
}

// StandardLib returns the commands understood by the engine.
func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"showboard":        stdlib(showboard),
		"territory":        stdlib(territory),

		"known_command":  stdlib2(knownCommand),
		"boardsize":      stdlib2(boardSize),
		"clear_board":    stdlib2(clearBoard),
		"play":           stdlib2(play),
		"undo":           stdlib2(undo),
		"final_score":    stdlib2(finalScore),
		"mark_territory": stdlib2(markTerritory),
		"snapshot":       stdlib2(snapshot),
		"last_move":      stdlib2(lastMove),
	}
}
