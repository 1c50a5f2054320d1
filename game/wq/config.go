package 围碁

import (
	"io"
	"log"
)

const (
	minSize = 2
	maxSize = 25
)

// Config configures a game
type Config struct {
	Size   int         // length of a side of the board
	Logger *log.Logger // where moves are logged. Nothing is logged if nil
}

// DefaultConfig is a 9x9 game.
func DefaultConfig() Config {
	return Config{
		Size: 9,
	}
}

func (conf Config) IsValid() bool { return conf.Size >= minSize && conf.Size <= maxSize }

func (conf Config) logger() *log.Logger {
	if conf.Logger != nil {
		return conf.Logger
	}
	return discard
}

var discard = log.New(io.Discard, "", 0)
