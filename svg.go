package xiangqi

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVG board geometry.  The grid is drawn on intersections, not cells, the way
// a physical board is.
const (
	svgCell   = 64
	svgMargin = 48
	svgRadius = 26
)

const (
	svgLineStyle  = "stroke:#54452d;stroke-width:2"
	svgBoardStyle = "fill:#f3e3bf"
	svgTextStyle  = "font-size:30px;font-family:serif;text-anchor:middle;dominant-baseline:central"
)

// WriteSVG renders the position as an SVG image, black side on top.
func (b *Board) WriteSVG(w io.Writer) {
	width := svgMargin*2 + svgCell*8
	height := svgMargin*2 + svgCell*9
	x := func(file int) int { return svgMargin + (file-3)*svgCell }
	y := func(rank int) int { return svgMargin + (12-rank)*svgCell }

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, svgBoardStyle)

	// Ranks run edge to edge; inner files break at the river.
	for rank := 3; rank <= 12; rank++ {
		canvas.Line(x(3), y(rank), x(11), y(rank), svgLineStyle)
	}
	for file := 3; file <= 11; file++ {
		if file == 3 || file == 11 {
			canvas.Line(x(file), y(12), x(file), y(3), svgLineStyle)
			continue
		}
		canvas.Line(x(file), y(12), x(file), y(8), svgLineStyle)
		canvas.Line(x(file), y(7), x(file), y(3), svgLineStyle)
	}

	// Palace diagonals.
	canvas.Line(x(6), y(3), x(8), y(5), svgLineStyle)
	canvas.Line(x(8), y(3), x(6), y(5), svgLineStyle)
	canvas.Line(x(6), y(12), x(8), y(10), svgLineStyle)
	canvas.Line(x(8), y(12), x(6), y(10), svgLineStyle)

	occupied := b.occupied
	for sq := occupied.PopMsb(); sq != NoSquare; sq = occupied.PopMsb() {
		p := b.PieceAt(sq)
		cx, cy := x(sq.File()), y(sq.Rank())
		ink := "#1f1f1f"
		if p.Color() == Red {
			ink = "#b02a21"
		}
		canvas.Circle(cx, cy, svgRadius, "fill:#fdf4da;stroke-width:2;stroke:"+ink)
		canvas.Text(cx, cy, p.Chinese(), svgTextStyle+";fill:"+ink)
	}

	canvas.End()
}
