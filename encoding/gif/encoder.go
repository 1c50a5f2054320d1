// Package gif records a game as an animated GIF, one text frame per snapshot.
package gif

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/goban/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi        = 144.0
	fontsize   = 12.0
	lineheight = 1.2

	// extra lines below the board: move, score and result
	extraLines = 3
	endDelay   = 300
	padding    = 10
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{Y: 0},
	color.Gray{Y: 253},
}

// Encoder renders snapshots into frames of a GIF. Frames are kept in memory until Flush is called.
//
// Frames are laid out for the board size of the snapshot. When the board size changes, the frame
// size changes with it, and the GIF is as large as its largest frame.
type Encoder struct {
	H, W int
	font.Drawer

	out *gif.GIF
	io.Writer
	name string

	maxH, maxW       int // maxHeight and maxWidth
	padH, padW       int // padding so everything don't start at the topleft
	screenH, screenW int // size of the largest frame so far
	size             int // board size the frames are laid out for
}

// NewEncoder creates an encoder with the given maximum height and width. name is printed on every frame.
func NewEncoder(w io.Writer, name string, h, wd int) *Encoder {
	return &Encoder{
		H:    -1,
		W:    -1,
		maxH: h,
		maxW: wd,
		padH: padding,
		padW: padding,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		out:    &gif.GIF{LoopCount: -1},
		Writer: w,
		name:   name,
	}
}

// Encode renders a snapshot of the game as a new frame.
func (enc *Encoder) Encode(g game.Snapshotter) error {
	s := g.Snapshot()
	repr := strings.TrimSuffix(fmt.Sprintf("%s", s), "\n")
	lines := strings.Split(repr, "\n")
	lines = append(lines, enc.name)
	lines = append(lines, status(s)...)

	if s.Size != enc.size {
		enc.layout(s.Size, lines)
	}

	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), image.White, image.Point{}, draw.Src)
	dy := lineHeight()
	y := enc.padH + dy
	enc.Dst = im
	for _, l := range lines {
		enc.Dot = fixed.P(enc.padW, y)
		enc.DrawString(l)
		y += dy
	}

	var delay int
	if s.Ended {
		delay = endDelay
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
	return nil
}

// Len returns the number of frames encoded so far.
func (enc *Encoder) Len() int { return len(enc.out.Image) }

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return errors.New("No frames to write")
	}
	enc.out.Config = image.Config{
		ColorModel: globPalette,
		Width:      enc.screenW,
		Height:     enc.screenH,
	}
	return errors.Wrap(gif.EncodeAll(enc.Writer, enc.out), "Unable to write gif")
}

// layout sizes the frames of a board of the given size to fit lines.
func (enc *Encoder) layout(size int, lines []string) {
	if enc.Face == nil {
		enc.Face = truetype.NewFace(regular, &truetype.Options{
			Size:    fontsize,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	enc.padH, enc.padW = padding, padding

	var maxW int
	for _, l := range lines {
		maxW = maxInt(maxW, font.MeasureString(enc.Face, l).Ceil())
	}
	// the status lines vary from frame to frame
	maxW = maxInt(maxW, font.MeasureString(enc.Face, "Black 000 - White 000, Black to move").Ceil())
	w := maxW + 2*enc.padW
	h := (len(lines)+1)*lineHeight() + 2*enc.padH

	w = minInt(w, enc.maxW)
	h = minInt(h, enc.maxH)

	if w == enc.maxW {
		enc.padW = 0
	}
	if h == enc.maxH {
		enc.padH = 0
	}

	enc.H = h
	enc.W = w
	enc.screenH = maxInt(enc.screenH, h)
	enc.screenW = maxInt(enc.screenW, w)
	enc.size = size
}

func status(s game.Snapshot) []string {
	lines := make([]string, 0, extraLines)
	if game.IsValid(s.LastMove.Player) {
		lines = append(lines, fmt.Sprintf("Last move: %v", s.LastMove))
	} else {
		lines = append(lines, "")
	}
	black, white := s.ScoreOf(game.Player(game.Black)), s.ScoreOf(game.Player(game.White))
	if !s.Ended {
		lines = append(lines, fmt.Sprintf("Black %d - White %d, %v to move", black, white, s.ToMove), "")
		return lines
	}
	lines = append(lines, fmt.Sprintf("Black %d - White %d", black, white))
	switch {
	case black > white:
		lines = append(lines, "Winner: Black")
	case white > black:
		lines = append(lines, "Winner: White")
	default:
		lines = append(lines, "Draw")
	}
	return lines
}

func lineHeight() int { return int(math.Ceil(fontsize * lineheight * dpi / 72)) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
