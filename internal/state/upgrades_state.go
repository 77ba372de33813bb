// internal/state/upgrades_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"node-zero/internal/component"
	"node-zero/internal/config"
	"node-zero/internal/ui"
)

// UpgradesState shows the saved statistics and sells upgrades against the saved points.
type UpgradesState struct {
	sm      *StateMachine
	menu    *ui.Menu
	stats   []*ui.Label
	buttons map[component.UpgradeKind]*ui.Button
}

func NewUpgradesState(sm *StateMachine) *UpgradesState {
	w, h := sm.Game.ScreenWidth(), sm.Game.ScreenHeight()
	s := &UpgradesState{
		sm:      sm,
		buttons: make(map[component.UpgradeKind]*ui.Button, len(component.UpgradeKinds)),
	}

	title := ui.NewLabel(float64(w)/2, float64(h)*config.TitleYRatio, "UPGRADES", true)
	title.Face = sm.TitleFace
	footer := ui.NewLabel(float64(w)/2, float64(h)*config.FooterYRatio, "Press ESC to return to menu", true)
	footer.Face = sm.Face
	footer.Color = config.TextDimColor
	s.menu = ui.NewMenu(title, footer)

	x := float64(w) * config.StatsXRatio
	y := float64(h) * config.StatsYRatio
	header := ui.NewLabel(x, y, "STATISTICS", false)
	header.Face = sm.Face
	header.Color = config.LevelDoneColor
	s.menu.Add(header)
	for i := 0; i < 8; i++ {
		l := ui.NewLabel(x, y+float64(i+1)*config.StatsSpacing, "", false)
		l.Face = sm.Face
		s.stats = append(s.stats, l)
		s.menu.Add(l)
	}

	actions := make([]func(), 0, len(component.UpgradeKinds))
	for _, kind := range component.UpgradeKinds {
		actions = append(actions, func() { s.purchase(kind) })
	}
	for i, b := range ui.ButtonColumn(w, h, y, make([]string, len(component.UpgradeKinds)), actions) {
		b.Face = sm.Face
		s.buttons[component.UpgradeKinds[i]] = b
		s.menu.Add(b)
	}
	return s
}

func (s *UpgradesState) purchase(kind component.UpgradeKind) {
	if s.sm.Game.Upgrades().Purchase(kind) {
		s.refresh()
	}
}

func (s *UpgradesState) Enter() { s.refresh() }
func (s *UpgradesState) Exit()  {}

func (s *UpgradesState) Update(float64) {
	if s.sm.Input.KeyJustPressed(ebiten.KeyEscape) {
		s.sm.Change(component.MainMenu)
		return
	}
	s.menu.Update(s.sm.Input)
}

func (s *UpgradesState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.menu.Draw(screen)
}

// refresh rewrites the statistics and button captions from the current save.
func (s *UpgradesState) refresh() {
	g := s.sm.Game
	data := g.Save().CurrentData()
	u := g.Upgrades()

	lines := []string{
		fmt.Sprintf("Points: %d", data.Points),
		fmt.Sprintf("High Points: %d", data.HighPoints),
		fmt.Sprintf("Games Played: %d", data.GamesPlayed),
		fmt.Sprintf("Total Nodes: %d", data.TotalNodesDestroyed),
		fmt.Sprintf("Max Health: %.0f", u.MaxHealth()),
		fmt.Sprintf("Regen Rate: %.1f/s", u.RegenRate()),
		fmt.Sprintf("Damage Zone: %.0f", u.DamageZoneSize()),
		fmt.Sprintf("Damage/Tick: %.0f", u.DamagePerTick()),
	}
	for i, l := range s.stats {
		l.SetText(lines[i])
	}

	for kind, b := range s.buttons {
		def := u.Definition(kind)
		b.Text = fmt.Sprintf("%s +%g  (%d)", def.Title, def.Amount, u.Cost(kind))
		b.NormalColor = config.ButtonNormalColor
		if !u.CanPurchase(kind) {
			b.NormalColor = config.ButtonPressColor
		}
		if kind == component.UpgradeDamageZone && def.Cap > 0 && u.DamageZoneSize() >= def.Cap {
			b.Text = def.Title + "  MAX LEVEL"
		}
	}
}

// Caption is the text of the purchase button for kind.
func (s *UpgradesState) Caption(kind component.UpgradeKind) string {
	return s.buttons[kind].Text
}
