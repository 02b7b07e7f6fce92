// internal/state/show_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-showcase/internal/app"
	"go-showcase/internal/assets"
	"go-showcase/internal/config"
	"go-showcase/internal/defs"
	"go-showcase/internal/types"
	"go-showcase/internal/ui"
)

// ShowState — основное состояние: сцена с каруселями и слингерами.
// Весь ввод разбирается здесь и транслируется в команды Stage; сами
// системы про ebiten не знают.
type ShowState struct {
	sm    *StateMachine
	stage *app.Stage
	faces *assets.FaceManager

	indicator  *ui.SlideIndicator
	infoPanel  *ui.InfoPanel
	gravityBtn *ui.GravityButton

	// Состояние жестов мыши.
	dragSlinger  types.EntityID
	slingerDrag  bool
	scrollDrag   bool
	lastX, lastY int
	dragVX       float64
}

func NewShowState(sm *StateMachine, def *defs.Definition, faces *assets.FaceManager, session *app.Session) *ShowState {
	stage := app.NewStage(def, faces, session)
	master := stage.MasterCarousel()

	s := &ShowState{
		sm:    sm,
		stage: stage,
		faces: faces,
		indicator: ui.NewSlideIndicator(
			float32(config.ScreenWidth)/2, float32(config.IndicatorY), master.SlideCount),
		infoPanel: ui.NewInfoPanel(24, 24, faces.Face(20), faces.Face(13), master.SlideCount),
		gravityBtn: ui.NewGravityButton(
			float32(config.GravityButtonX), float32(config.GravityButtonY),
			float32(config.GravityButtonSize), stage.GravityEnabled()),
	}

	title, subtitle, index := stage.StableSlideInfo()
	s.infoPanel.SetSlide(title, subtitle, index)
	return s
}

func (s *ShowState) Enter() {}

func (s *ShowState) Update(deltaTime float64) {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	s.stage.SetPointer(fx, fy)

	s.handleKeyboard()
	s.handleWheel()
	s.handleMouse(mx, my, fx, fy, deltaTime)

	s.stage.Update(deltaTime)

	title, subtitle, index := s.stage.StableSlideInfo()
	s.infoPanel.SetSlide(title, subtitle, index)
	s.gravityBtn.On = s.stage.GravityEnabled()

	s.lastX, s.lastY = mx, my
}

func (s *ShowState) handleKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.stage.Def, s.faces, s.stage.Session))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.stage.ToggleGravity()
		s.gravityBtn.Toggle()
	}

	master := s.stage.MasterCarousel()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.stage.ScrollToSlide(master.CurrentIndex + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.stage.ScrollToSlide(master.CurrentIndex - 1)
	}

	// Цифры 1..9 — прямой переход к слайду.
	for i := 0; i < master.SlideCount && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			s.stage.ScrollToSlide(i)
			s.indicator.HandleClick()
		}
	}
}

func (s *ShowState) handleWheel() {
	_, wy := ebiten.Wheel()
	if wy != 0 {
		s.stage.CarouselSystem.Flick(-wy * config.WheelFlickScale)
	}
}

func (s *ShowState) handleMouse(mx, my int, fx, fy, deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// UI перехватывает клик раньше сцены.
		if idx, ok := s.indicator.HitTest(mx, my); ok {
			s.stage.ScrollToSlide(idx)
			s.indicator.HandleClick()
			return
		}
		if s.gravityBtn.IsClicked(mx, my) {
			s.stage.ToggleGravity()
			s.gravityBtn.Toggle()
			return
		}
		if id, ok := s.stage.SlingerSystem.SlingerAt(fx, fy); ok {
			s.dragSlinger = id
			s.slingerDrag = true
			s.stage.SlingerSystem.BeginDrag(id, fx, fy)
			return
		}
		// Пустое место — ручная прокрутка фона.
		s.scrollDrag = true
		s.dragVX = 0
		s.stage.CarouselSystem.Halt()
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx := float64(mx - s.lastX)
		dy := float64(my - s.lastY)
		switch {
		case s.slingerDrag:
			s.stage.SlingerSystem.DragTo(s.dragSlinger, dx, dy, fx, fy)
		case s.scrollDrag:
			// Контент движется против указателя.
			s.stage.CarouselSystem.ApplyScroll(-dx)
			if deltaTime > 0 {
				s.dragVX = dx / deltaTime
			}
		}
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if s.slingerDrag {
			s.stage.SlingerSystem.EndDrag(s.dragSlinger)
			s.slingerDrag = false
		}
		if s.scrollDrag {
			s.stage.CarouselSystem.Flick(-s.dragVX * config.DragFlickScale)
			s.scrollDrag = false
		}
	}
}

func (s *ShowState) Draw(screen *ebiten.Image) {
	s.stage.RenderSystem.Draw(screen)

	master := s.stage.MasterCarousel()
	s.indicator.Draw(screen, master.NormalizedIndex())
	s.infoPanel.Draw(screen)
	s.gravityBtn.Draw(screen)
}

func (s *ShowState) Exit() {}
