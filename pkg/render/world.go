// pkg/render/world.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/effect"
	"node-zero/internal/entity"
	"node-zero/internal/interfaces"
	"node-zero/internal/utils"
)

const (
	nodeStrokeWidth = 2
	zoneStrokeWidth = 2
	bossBarHeight   = 10
	bossBarWidth    = 0.5 // of screen width
)

// WorldRenderer draws the playing field: pickups, nodes, effects and the cursor zone.
type WorldRenderer struct {
	poly *PolygonRenderer
	face font.Face
}

func NewWorldRenderer(face font.Face) *WorldRenderer {
	return &WorldRenderer{
		poly: NewPolygonRenderer(),
		face: face,
	}
}

// Draw renders the field of g. fx may be nil.
func (r *WorldRenderer) Draw(screen *ebiten.Image, g interfaces.Game, fx *effect.Effects) {
	screen.Fill(config.BackgroundColor)

	var ox, oy float64
	if fx != nil {
		ox, oy = fx.Shake.Offset()
	}

	for _, p := range g.Pickups().Pickups() {
		r.drawPickup(screen, p, ox, oy)
	}

	for _, n := range g.Nodes() {
		if n.State() == component.Active {
			r.drawNode(screen, n, ox, oy)
		}
	}

	if fx != nil {
		r.drawEffects(screen, fx, g.Cursor(), ox, oy)
	}

	r.drawZone(screen, g.Cursor(), g.Upgrades().DamageZoneSize())

	if boss := barBoss(g.Boss()); boss != nil {
		r.drawBossBar(screen, boss, g.ScreenWidth())
	}
}

func (r *WorldRenderer) drawNode(screen *ebiten.Image, n *entity.Node, ox, oy float64) {
	pos := n.Position()
	x, y := pos.X+ox, pos.Y+oy
	clr := effect.ShapeColor(n.Shape())

	ratio := 1.0
	if n.MaxHP() > 0 {
		ratio = n.HP() / n.MaxHP()
	}
	fill := WithAlpha(clr, 0.3+0.7*ratio)

	switch n.Shape() {
	case component.Circle:
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(n.Size()), fill, true)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(n.Size()), nodeStrokeWidth, LightenColor(clr, 40), true)
	case component.Square:
		path := RegularPolygon(x, y, n.Size()*math.Sqrt2, 4, n.Rotation()+45)
		r.poly.Fill(screen, path, fill)
		r.poly.Stroke(screen, path, nodeStrokeWidth, LightenColor(clr, 40))
	case component.Hexagon:
		path := RegularPolygon(x, y, n.Size(), 6, n.Rotation())
		r.poly.Fill(screen, path, fill)
		r.poly.Stroke(screen, path, nodeStrokeWidth, LightenColor(clr, 40))
	case component.Boss:
		outer := RegularPolygon(x, y, n.Size(), 8, n.Rotation())
		r.poly.Fill(screen, outer, DarkenColor(clr))
		inner := RegularPolygon(x, y, n.Size()*0.6*ratio, 8, -n.Rotation())
		r.poly.Fill(screen, inner, clr)
		r.poly.Stroke(screen, outer, nodeStrokeWidth*2, LightenColor(clr, 60))
	}
}

func (r *WorldRenderer) drawPickup(screen *ebiten.Image, p component.PointPickup, ox, oy float64) {
	pos := PickupPosition(p)
	clr := WithAlpha(config.PickupColor, p.LifeRatio())
	vector.DrawFilledCircle(screen, float32(pos.X+ox), float32(pos.Y+oy), float32(p.Size), clr, true)
}

// PickupPosition is where p is drawn: it slides out of its drop origin for a short while after spawning.
func PickupPosition(p component.PointPickup) component.Position {
	k := utils.Clamp(p.Age()/config.PickupSpawnAnimTime, 0, 1)
	k = 1 - (1-k)*(1-k)
	return component.Position{
		X: utils.Lerp(p.SpawnOrigin.X, p.Position.X, k),
		Y: utils.Lerp(p.SpawnOrigin.Y, p.Position.Y, k),
	}
}

func (r *WorldRenderer) drawEffects(screen *ebiten.Image, fx *effect.Effects, cursor component.Position, ox, oy float64) {
	for _, p := range fx.Particles.Items() {
		size := float32(p.Size * p.LifeRatio())
		if size <= 0 {
			continue
		}
		clr := WithAlpha(p.Color, p.LifeRatio())
		vector.DrawFilledRect(screen, float32(p.Position.X+ox)-size/2, float32(p.Position.Y+oy)-size/2, size, size, clr, false)
	}
	for _, t := range fx.Trails.Items() {
		pos := effect.Position(t, cursor)
		clr := WithAlpha(config.PickupColor, 1-t.Progress()*0.5)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(t.Size), clr, true)
	}
}

func (r *WorldRenderer) drawZone(screen *ebiten.Image, cursor component.Position, size float64) {
	half := size / 2
	x, y := float32(cursor.X-half), float32(cursor.Y-half)
	vector.DrawFilledRect(screen, x, y, float32(size), float32(size), WithAlpha(config.ZoneColor, 0.15), false)
	vector.StrokeRect(screen, x, y, float32(size), float32(size), zoneStrokeWidth, config.ZoneColor, false)
}

// barBoss is the boss whose health bar is shown, or nil once it is down.
func barBoss(boss *entity.Node) *entity.Node {
	if boss == nil || boss.State() != component.Active {
		return nil
	}
	return boss
}

func (r *WorldRenderer) drawBossBar(screen *ebiten.Image, boss *entity.Node, screenWidth int) {
	width := float32(float64(screenWidth) * bossBarWidth)
	x := (float32(screenWidth) - width) / 2
	y := float32(config.HUDMargin) + 48

	ratio := 0.0
	if boss.MaxHP() > 0 {
		ratio = utils.Clamp(boss.HP()/boss.MaxHP(), 0, 1)
	}
	bossColor := effect.ShapeColor(component.Boss)
	vector.DrawFilledRect(screen, x, y, width, bossBarHeight, DarkenColor(bossColor), false)
	vector.DrawFilledRect(screen, x, y, width*float32(ratio), bossBarHeight, bossColor, false)
	vector.StrokeRect(screen, x, y, width, bossBarHeight, 1, config.ButtonStroke, false)

	label := fmt.Sprintf("BOSS  %.0f / %.0f", boss.HP(), boss.MaxHP())
	b := text.BoundString(r.face, label)
	text.Draw(screen, label, r.face, int(x+width/2)-b.Dx()/2, int(y)-4, color.White)
}
