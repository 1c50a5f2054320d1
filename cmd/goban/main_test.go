package main

import (
	"bytes"
	"image/gif"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir, err := ioutil.TempDir("", "goban")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	opts := options{
		size:    9,
		name:    "test",
		gifFile: filepath.Join(dir, "game.gif"),
		dotFile: filepath.Join(dir, "game.dot"),
	}
	in := strings.NewReader("boardsize 19\nplay b d4\nplay w q16\nquit\n")
	var out, logs bytes.Buffer

	require.NoError(t, run(opts, in, &out, log.New(&logs, "", 0)))
	assert.Equal(t, "= \n\n= \n\n= \n\n= \n\n", out.String())

	f, err := os.Open(opts.gifFile)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	// the starting board, then one frame per command that changed the game
	assert.Len(t, g.Image, 4)

	dot, err := ioutil.ReadFile(opts.dotFile)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "g1")
	assert.Contains(t, string(dot), "g2")
}

func TestRun_BadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "goban")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	opts := options{size: 1, gifFile: filepath.Join(dir, "game.gif")}
	err = run(opts, strings.NewReader(""), ioutil.Discard, log.New(ioutil.Discard, "", 0))
	assert.Error(t, err)

	_, err = os.Stat(opts.gifFile)
	assert.True(t, os.IsNotExist(err), "no gif should be created for a bad config")

	opts = options{size: 9, gifFile: filepath.Join(dir, "missing", "game.gif")}
	err = run(opts, strings.NewReader(""), ioutil.Discard, log.New(ioutil.Discard, "", 0))
	assert.Error(t, err)
}
