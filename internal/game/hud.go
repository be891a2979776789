package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 8
	hudLineHeight = 16
)

var (
	hudLabelColor = color.RGBA{160, 160, 160, 255}
	hudValueColor = color.RGBA{255, 255, 255, 255}
	hudAlertColor = color.RGBA{255, 96, 96, 255}
	hudBackground = color.RGBA{24, 24, 32, 255}
)

type coloredTextSegment struct {
	text  string
	color color.Color
}

func drawColoredTextSegments(screen *ebiten.Image, x, y int, segments []coloredTextSegment) {
	face := basicfont.Face7x13
	baseline := y + face.Ascent
	curX := x
	for _, seg := range segments {
		ebitext.Draw(screen, seg.text, face, curX, baseline, seg.color)
		curX += font.MeasureString(face, seg.text).Round()
	}
}

func segmentsWidth(segments []coloredTextSegment) int {
	w := 0
	for _, seg := range segments {
		w += font.MeasureString(basicfont.Face7x13, seg.text).Round()
	}
	return w
}

func labelled(label, value string) []coloredTextSegment {
	return []coloredTextSegment{
		{text: label + ": ", color: hudLabelColor},
		{text: value, color: hudValueColor},
	}
}

// drawHUD draws the snapshot on the left, step metrics on the right and the
// most recent report lines along the bottom.
func (d *Demo) drawHUD(screen *ebiten.Image) {
	screen.Fill(hudBackground)
	h := d.helper
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	rows := [][]coloredTextSegment{
		labelled("Frame", fmt.Sprintf("%d  (%s)", h.Frame(), h.DeltaTime().Round(time.Millisecond))),
		labelled("State", h.State().String()),
		{{text: heldSummary(h), color: hudValueColor}},
	}
	if x, y, ok := h.Cursor(); ok {
		rows = append(rows, labelled("Cursor", fmt.Sprintf("%.0f, %.0f", x, y)))
	} else {
		rows = append(rows, labelled("Cursor", "outside"))
	}
	if w, hgt, ok := h.Resolution(); ok {
		rows = append(rows, labelled("Window", fmt.Sprintf("%dx%d @%.2f", w, hgt, h.ScaleFactor())))
	}
	rows = append(rows, labelled("Focused", fmt.Sprint(h.Focused())))

	y := hudMargin
	for _, row := range rows {
		drawColoredTextSegments(screen, hudMargin, y, row)
		y += hudLineHeight
	}

	m := d.feeder.Monitor().GetCurrentMetrics()
	stats := [][]coloredTextSegment{
		labelled("Events", fmt.Sprintf("%d (peak %d, avg %.1f)", m.EventsLastFrame, m.PeakEvents, m.EventsPerFrame)),
		labelled("Step", m.AvgStepTime.Round(time.Microsecond).String()),
		labelled("Mem", fmt.Sprintf("%d MB", m.MemoryUsageMB)),
		labelled("Up", d.feeder.Monitor().Uptime().Round(time.Second).String()+" (F5 resets)"),
	}
	for _, a := range d.feeder.Monitor().CheckAlerts() {
		stats = append(stats, []coloredTextSegment{{text: a.Message, color: hudAlertColor}})
	}
	y = hudMargin
	for _, row := range stats {
		drawColoredTextSegments(screen, width-hudMargin-segmentsWidth(row), y, row)
		y += hudLineHeight
	}

	y = height - hudMargin - len(d.log)*hudLineHeight
	for _, line := range d.log {
		ebitenutil.DebugPrintAt(screen, line, hudMargin, y)
		y += hudLineHeight
	}
}
