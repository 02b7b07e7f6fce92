// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-showcase/internal/app"
	"go-showcase/internal/assets"
	"go-showcase/internal/config"
	"go-showcase/internal/defs"
	"go-showcase/internal/ui"
)

// MenuState — стартовый экран с кнопкой входа в шоу.
type MenuState struct {
	sm      *StateMachine
	def     *defs.Definition
	faces   *assets.FaceManager
	session *app.Session

	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, def *defs.Definition, faces *assets.FaceManager, session *app.Session) *MenuState {
	btnW := float32(220)
	btnH := float32(52)
	return &MenuState{
		sm:      sm,
		def:     def,
		faces:   faces,
		session: session,
		startButton: ui.NewButton(
			float32(config.ScreenWidth)/2-btnW/2,
			float32(config.ScreenHeight)/2+40,
			btnW, btnH, "Enter", faces.Face(20)),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewShowState(m.sm, m.def, m.faces, m.session))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if m.startButton.Contains(mx, my) {
			m.sm.SetState(NewShowState(m.sm, m.def, m.faces, m.session))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	titleFace := m.faces.Face(32)
	title := "Showcase"
	bounds := text.BoundString(titleFace, title)
	text.Draw(screen, title, titleFace,
		config.ScreenWidth/2-bounds.Dx()/2, config.ScreenHeight/2-40, config.TextLightColor)

	hintFace := m.faces.Face(14)
	hint := "Space or click to enter"
	hb := text.BoundString(hintFace, hint)
	text.Draw(screen, hint, hintFace,
		config.ScreenWidth/2-hb.Dx()/2, config.ScreenHeight/2, config.TextDimColor)

	mx, my := ebiten.CursorPosition()
	m.startButton.Draw(screen, mx, my)
}

func (m *MenuState) Exit() {}
