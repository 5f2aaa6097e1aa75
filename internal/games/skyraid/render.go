package skyraid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/skyraid/internal/core"
)

// Sprites are drawn centered on the entity. Multi-row sprites are used when
// the entity spans enough cells.
var (
	playerSprite = []string{`/A\`}
	shieldSprite = []string{`(/A\)`}

	enemySprites = map[string][]string{
		"basic":   {`<o>`},
		"fast":    {`\v/`},
		"heavy":   {`[#]`},
		"shooter": {`{*}`},
		"boss":    {`/=====\`, `|[O O]|`, `\_VVV_/`},
	}

	enemyColors = map[string]core.Color{
		"basic":   core.ColorRed,
		"fast":    core.ColorBrightMagenta,
		"heavy":   core.ColorYellow,
		"shooter": core.ColorMagenta,
		"boss":    core.ColorBrightRed,
	}

	powerupGlyphs = map[PowerupType]struct {
		text  string
		color core.Color
	}{
		PowerupWeapon:    {"[W]", core.ColorBrightYellow},
		PowerupHealth:    {"[+]", core.ColorBrightGreen},
		PowerupShield:    {"[S]", core.ColorBrightBlue},
		PowerupRapidFire: {"[R]", core.ColorOrange},
		PowerupMultiShot: {"[M]", core.ColorBrightMagenta},
	}
)

const hudRows = 1

// errNoSprite is returned for views the renderer cannot draw.
var errNoSprite = errors.New("no sprite")

// Canvas maps world coordinates onto a terminal screen. Row 0 holds the HUD
// and the playfield is stretched over the remaining rows.
type Canvas struct {
	dst    *core.Screen
	sx, sy float64
}

// NewCanvas creates a canvas for a field of fieldW x fieldH world units.
func NewCanvas(dst *core.Screen, fieldW, fieldH float64) *Canvas {
	c := &Canvas{dst: dst}
	if fieldW > 0 {
		c.sx = float64(dst.Width()) / fieldW
	}
	if fieldH > 0 {
		c.sy = float64(dst.Height()-hudRows) / fieldH
	}
	return c
}

// Cell returns the screen cell of world point (x, y).
func (c *Canvas) Cell(x, y float64) (int, int) {
	return int(x * c.sx), int(y*c.sy) + hudRows
}

// Put draws one rune at world point (x, y). Points above the field are not
// drawn over the HUD.
func (c *Canvas) Put(x, y float64, r rune, color core.Color) {
	cx, cy := c.Cell(x, y)
	if cy < hudRows {
		return
	}
	c.dst.SetColor(cx, cy, r, color)
}

// Sprite draws rows centered on the view's center.
func (c *Canvas) Sprite(v EntityView, rows []string, color core.Color) {
	cx, cy := c.Cell(v.X+v.W/2, v.Y+v.H/2)
	// Collapse tall sprites when the entity covers a single row.
	if _, bottom := c.Cell(v.X, v.Y+v.H); bottom-cy < 1 && len(rows) > 1 {
		rows = rows[len(rows)/2 : len(rows)/2+1]
	}
	top := cy - len(rows)/2
	for i, row := range rows {
		y := top + i
		if y < hudRows {
			continue
		}
		c.dst.DrawTextColor(cx-len([]rune(row))/2, y, row, color)
	}
}

// DrawView draws one entity view.
func (c *Canvas) DrawView(v EntityView) error {
	switch v.Kind {
	case KindPlayer:
		rows, color := playerSprite, core.ColorBrightCyan
		if v.Variant == "shield" {
			rows = shieldSprite
			color = core.ColorBrightBlue
		}
		if v.Flash {
			return nil
		}
		c.Sprite(v, rows, color)

	case KindEnemy:
		rows, ok := enemySprites[v.Variant]
		if !ok {
			rows = []string{"<?>"}
		}
		color := enemyColors[v.Variant]
		switch {
		case v.Flash:
			color = core.ColorBrightWhite
		case v.Shield:
			color = core.ColorBrightBlue
		}
		c.Sprite(v, rows, color)

	case KindBullet:
		if v.Variant == OwnerEnemy.String() {
			c.Put(v.X+v.W/2, v.Y+v.H/2, '!', core.ColorRed)
		} else {
			c.Put(v.X+v.W/2, v.Y+v.H/2, '|', core.ColorBrightYellow)
		}

	case KindParticle:
		r := '*'
		if v.Fade < 0.5 {
			r = '.'
		}
		c.Put(v.X, v.Y, r, v.Color)

	case KindPowerup:
		g, ok := powerupGlyphs[PowerupType(v.Variant)]
		if !ok {
			return fmt.Errorf("%w for powerup %q", errNoSprite, v.Variant)
		}
		c.Sprite(v, []string{g.text}, g.color)

	default:
		return fmt.Errorf("%w for kind %v", errNoSprite, v.Kind)
	}
	return nil
}

// Render draws the current frame into dst from a fresh snapshot. A view that
// fails to draw is logged and its entity is quarantined until the next frame
// starts. Any other render failure is logged and leaves dst blank.
func (g *Game) Render(dst *core.Screen) {
	err := safeCall(func() error {
		g.renderFrame(dst)
		return nil
	})
	if err != nil {
		g.log.Error("frame render failed", "op", "render", "phase", g.phase.String(), "err", err)
		dst.Clear()
	}
}

func (g *Game) renderFrame(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	if g.world == nil {
		renderMenu(dst, snap)
		return
	}

	field := g.world.Field()
	c := NewCanvas(dst, field.W, field.H)

	if snap.Phase == PhasePlaying || snap.Phase == PhasePaused {
		for _, v := range snap.Views() {
			err := safeCall(func() error { return c.DrawView(v) })
			if err != nil {
				g.log.Error("entity operation failed", "op", "render", "kind", v.Kind.String(), "entity", v.ID, "err", err)
				g.Quarantine(v.ID)
			}
		}
	}

	renderHUD(dst, snap)

	switch snap.Phase {
	case PhaseMenu:
		renderMenu(dst, snap)
	case PhasePaused:
		renderPaused(dst)
	case PhaseGameOver:
		renderGameOver(dst, snap)
	}
}

// renderHUD draws score, lives, level and active effects on row 0.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	lives := fmt.Sprintf("Lives: %s", strings.Repeat("♥", snap.Lives))
	if snap.Lives > 5 {
		lives = fmt.Sprintf("Lives: %d", snap.Lives)
	}
	dst.DrawTextCentered(0, lives, core.ColorBrightRed)

	right := fmt.Sprintf("Lv %d  Hi %d", snap.Level, snap.HighScore)
	if snap.HasPlayer {
		right = fmt.Sprintf("W%d  %s", snap.WeaponLevel, right)
		if fx := effectsText(snap); fx != "" {
			right = fx + "  " + right
		}
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorGray)
}

// effectsText lists timed effects with their remaining seconds.
func effectsText(snap Snapshot) string {
	var parts []string
	for _, e := range []struct {
		tag string
		ms  float64
	}{
		{"SH", snap.Shield},
		{"RF", snap.RapidFire},
		{"MS", snap.MultiShot},
	} {
		if e.ms > 0 {
			parts = append(parts, fmt.Sprintf("%s%d", e.tag, int(e.ms/1000)+1))
		}
	}
	return strings.Join(parts, " ")
}

func renderMenu(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "S K Y R A I D", core.ColorBrightCyan)
	dst.DrawTextCentered(mid-1, "Arrows/WASD move, Space fires", core.ColorWhite)
	dst.DrawTextCentered(mid+1, "Press ENTER to start", core.ColorBrightYellow)
	if snap.HighScore > 0 {
		dst.DrawTextCentered(mid+3, fmt.Sprintf("High score: %d", snap.HighScore), core.ColorGray)
	}
}

func renderPaused(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
	dst.DrawTextCentered(mid+2, "P to resume, M for menu", core.ColorGray)
}

func renderGameOver(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Score: %d  Kills: %d", snap.Score, snap.Kills), core.ColorWhite)
	if snap.NewHighScore {
		dst.DrawTextCentered(mid+1, "New high score!", core.ColorBrightYellow)
	}
	dst.DrawTextCentered(mid+3, "R to restart, M for menu", core.ColorGray)
}
