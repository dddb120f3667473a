package assets

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// CellSize is the pixel size of one cell in generated sheets.
const CellSize = 64

var (
	sheetsMu sync.Mutex
	sheets   = map[string]*ebiten.Image{}
)

// Sheet returns the shared sprite sheet called name. A PNG at
// sheets/<name>.png wins; otherwise a placeholder grid of cols x rows cells
// is generated. Every caller asking for the same name gets the same image.
func Sheet(name string, cols, rows int) *ebiten.Image {
	sheetsMu.Lock()
	defer sheetsMu.Unlock()

	if img, ok := sheets[name]; ok {
		return img
	}
	img, err := LoadImage("sheets/" + name + ".png")
	if err != nil {
		img = Placeholder(name, cols, rows)
	}
	sheets[name] = img
	return img
}

// ForgetSheet drops a cached sheet so the next Sheet call reloads it.
func ForgetSheet(name string) {
	sheetsMu.Lock()
	delete(sheets, name)
	sheetsMu.Unlock()
}

var rowTints = []color.RGBA{
	colornames.Steelblue,
	colornames.Seagreen,
	colornames.Indianred,
	colornames.Mediumpurple,
	colornames.Goldenrod,
	colornames.Slategray,
}

var bodyTints = map[string]color.RGBA{
	"love":   colornames.Hotpink,
	"knight": colornames.Silver,
}

// Placeholder draws a sheet where each row is one clip and each column one
// frame. The figure shifts across the columns so animation is visible, and
// its eye sits on the right so facing is visible.
func Placeholder(name string, cols, rows int) *ebiten.Image {
	if cols <= 0 || rows <= 0 {
		log.Printf("assets: sheet %q: bad grid %dx%d, using 1x1", name, cols, rows)
		cols, rows = 1, 1
	}
	img := ebiten.NewImage(cols*CellSize, rows*CellSize)
	body, ok := bodyTints[name]
	if !ok {
		body = colornames.Wheat
	}

	for r := 0; r < rows; r++ {
		tint := rowTints[r%len(rowTints)]
		tint.A = 90
		for c := 0; c < cols; c++ {
			x := float32(c * CellSize)
			y := float32(r * CellSize)
			vector.DrawFilledRect(img, x, y, CellSize, CellSize, tint, false)
			vector.StrokeRect(img, x+0.5, y+0.5, CellSize-1, CellSize-1, 1, colornames.Black, false)

			bob := float32(c%2) * 4
			lean := float32(c) * 3
			vector.DrawFilledRect(img, x+20+lean, y+18-bob, 22, 38, body, false)
			vector.DrawFilledCircle(img, x+31+lean, y+14-bob, 9, body, true)
			vector.DrawFilledCircle(img, x+35+lean, y+12-bob, 2, colornames.Black, true)
		}
	}
	return img
}
