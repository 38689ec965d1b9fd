package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mxkrl/chesscore/internal/board"
)

// Renderer composes a single board snapshot into an off-screen
// *ebiten.Image: the square grid, piece glyphs, and a highlight on the
// checked king's square. There is no game loop; callers compose one frame
// at a time and encode or display it themselves.
type Renderer struct {
	pieces     *PieceCache
	theme      *Theme
	squareSize int
}

// NewRenderer builds a Renderer that draws squareSize-pixel squares using
// theme (DefaultTheme() if nil).
func NewRenderer(squareSize int, theme *Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{
		pieces:     NewPieceCache(squareSize),
		theme:      theme,
		squareSize: squareSize,
	}
}

// BoardSize returns the pixel width/height of a full 8x8 board image.
func (r *Renderer) BoardSize() int {
	return r.squareSize * 8
}

// SquareToScreen converts a board square to the top-left pixel coordinate of
// its square, flipping ranks so rank 1 renders at the bottom as on a real
// board.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	x := sq.File() * r.squareSize
	y := (7 - sq.Rank()) * r.squareSize
	return x, y
}

// Compose draws pos onto a freshly allocated board-sized image: the square
// grid, every piece, and, if pos's side to move is in check, a highlight on
// that king's square.
func (r *Renderer) Compose(pos *board.Position) *ebiten.Image {
	size := r.BoardSize()
	img := ebiten.NewImage(size, size)
	img.Fill(r.theme.Background)

	r.drawSquares(img)
	r.drawPieces(img, pos)

	if pos.InCheck() {
		king := pos.Sets[pos.SideToMove].King()
		r.highlightSquare(img, king, r.theme.CheckColor)
	}

	return img
}

func (r *Renderer) drawSquares(img *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := float32(file * r.squareSize)
			y := float32((7 - rank) * r.squareSize)

			c := r.theme.LightSquare
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(img, x, y, float32(r.squareSize), float32(r.squareSize), c, false)
		}
	}
}

func (r *Renderer) drawPieces(img *ebiten.Image, pos *board.Position) {
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		sprite := r.pieces.Image(piece)
		if sprite == nil {
			continue
		}
		x, y := r.SquareToScreen(sq)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		img.DrawImage(sprite, op)
	}
}

func (r *Renderer) highlightSquare(img *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(img, float32(x), float32(y), float32(r.squareSize), float32(r.squareSize), c, false)
}
