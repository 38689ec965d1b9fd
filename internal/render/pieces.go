package render

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/mxkrl/chesscore/internal/board"
)

// renderScale: glyphs are rasterized at a higher resolution than they are
// displayed at, then downsampled, so the edges stay crisp after scaling.
const renderScale = 3.0

// pieceGlyph is the single SVG letter drawn for each piece kind. There is
// no art asset pipeline here, so each glyph is generated as a minimal
// circle+letter SVG rather than shipped as artwork.
var pieceGlyph = map[board.PieceType]byte{
	board.Pawn:   'P',
	board.Knight: 'N',
	board.Bishop: 'B',
	board.Rook:   'R',
	board.Queen:  'Q',
	board.King:   'K',
}

func pieceSVG(p board.Piece, size int) string {
	fill, stroke := "#f5f5f5", "#1a1a1a"
	if p.Color() == board.Black {
		fill, stroke = "#1a1a1a", "#f5f5f5"
	}
	letter := pieceGlyph[p.Type()]
	cx := size / 2
	r := size/2 - size/16
	fontSize := size * 6 / 10
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
			`<circle cx="%d" cy="%d" r="%d" fill="%s" stroke="%s" stroke-width="%d"/>`+
			`<text x="%d" y="%d" font-family="sans-serif" font-size="%d" font-weight="bold" `+
			`text-anchor="middle" dominant-baseline="central" fill="%s">%c</text>`+
			`</svg>`,
		size, size, cx, cx, r, fill, stroke, size/20,
		cx, cx, fontSize, stroke, letter,
	)
}

// PieceCache rasterizes and caches one image per board.Piece at a given
// display size: parse an SVG with oksvg, rasterize at renderScale with
// rasterx, then downsample to display resolution with x/image/draw rather
// than relying on GPU scaling at draw time.
type PieceCache struct {
	images map[board.Piece]*ebiten.Image
	size   int
}

// NewPieceCache builds glyphs for all twelve pieces at the given display size.
func NewPieceCache(size int) *PieceCache {
	pc := &PieceCache{
		images: make(map[board.Piece]*ebiten.Image, 12),
		size:   size,
	}
	pc.load()
	return pc
}

func (pc *PieceCache) load() {
	renderSize := int(float64(pc.size) * renderScale)

	for _, color := range [2]board.Color{board.White, board.Black} {
		for kind := board.Pawn; kind <= board.King; kind++ {
			p := board.NewPiece(kind, color)
			svg := pieceSVG(p, renderSize)

			icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
			if err != nil {
				log.Printf("render: failed to parse piece glyph %s: %v", p, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			hi := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, hi, hi.Bounds())
			rasterizer := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(rasterizer, 1.0)

			lo := image.NewRGBA(image.Rect(0, 0, pc.size, pc.size))
			draw.ApproxBiLinear.Scale(lo, lo.Bounds(), hi, hi.Bounds(), draw.Over, nil)

			pc.images[p] = ebiten.NewImageFromImage(lo)
		}
	}
}

// Image returns the cached glyph for p, or nil for board.NoPiece.
func (pc *PieceCache) Image(p board.Piece) *ebiten.Image {
	return pc.images[p]
}

// Size returns the display size pieces were rasterized at.
func (pc *PieceCache) Size() int {
	return pc.size
}
