// internal/app/stage.go
package app

import (
	"log"

	"go-showcase/internal/assets"
	"go-showcase/internal/component"
	"go-showcase/internal/config"
	"go-showcase/internal/defs"
	"go-showcase/internal/entity"
	"go-showcase/internal/event"
	"go-showcase/internal/system"
	"go-showcase/internal/types"
	"go-showcase/internal/utils"
	"go-showcase/pkg/render"
	"go-showcase/pkg/scroll"
)

// Stage holds the main showcase state and logic.
type Stage struct {
	Def             *defs.Definition
	ECS             *entity.ECS
	CarouselSystem  *system.CarouselSystem
	ParallaxSystem  *system.ParallaxSystem
	SlingerSystem   *system.SlingerSystem
	EffectSystem    *system.EffectSystem
	RenderSystem    *system.RenderSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Session         *Session

	masterID types.EntityID

	// Pointer state — пишется из ShowState каждый тик.
	pointerX, pointerY float64
	pointerKnown       bool
	gravityOn          bool

	// Последняя стабилизация — для инфо-панели.
	stableTitle    string
	stableSubtitle string
	stableIndex    int
}

// NewStage initializes a new stage instance.
func NewStage(def *defs.Definition, faces *assets.FaceManager, session *Session) *Stage {
	if def == nil {
		panic("show definition cannot be nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	s := &Stage{
		Def:             def,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(0),
		Session:         session,
		gravityOn:       session.GravityOn(),
	}

	s.buildLayers()

	cardStyle := render.CardStyle{
		StrokeColor:   config.CardStrokeColor,
		TitleColor:    config.TextLightColor,
		SubtitleColor: config.TextDimColor,
		StrokeWidth:   2,
	}
	cards := render.NewCardRenderer(int(config.SlideWidth), int(config.SlideHeight),
		cardStyle, faces.Face(20), faces.Face(13))

	s.CarouselSystem = system.NewCarouselSystem(ecs, eventDispatcher, s.masterID)
	s.ParallaxSystem = system.NewParallaxSystem(ecs, eventDispatcher, s.masterID)
	s.SlingerSystem = system.NewSlingerSystem(ecs, eventDispatcher, s, s, def.Physics.GravityPull)
	s.EffectSystem = system.NewEffectSystem(ecs)
	s.RenderSystem = system.NewRenderSystem(ecs, cards, faces.Face(14))

	listener := &StageEventListener{stage: s}
	eventDispatcher.Subscribe(event.WallHit, listener)
	eventDispatcher.Subscribe(event.SlideStabilized, listener)
	eventDispatcher.Subscribe(event.SlingerIdle, listener)
	eventDispatcher.Subscribe(event.GravityToggled, listener)

	s.spawnSlingers()

	// Восстанавливаем последний стабильный слайд и собираем стартовую раскладку.
	s.CarouselSystem.SnapToSlide(session.LastSlide())
	s.ParallaxSystem.Update(0)
	s.ParallaxSystem.Relayout()
	s.stableIndex = session.LastSlide()
	s.refreshStableInfo(s.stableIndex)

	return s
}

// buildLayers создаёт сущности слоёв и их слайдов из описания шоу.
func (s *Stage) buildLayers() {
	for li := range s.Def.Layers {
		ld := &s.Def.Layers[li]
		layerID := s.ECS.NewEntity()

		role := component.RoleSlave
		if ld.Role == defs.RoleMaster {
			role = component.RoleMaster
			s.masterID = layerID
		}
		baseY := ld.Y
		if baseY == 0 {
			baseY = config.CarouselCenterY
		}
		s.ECS.Carousels[layerID] = &component.Carousel{
			DefID:      ld.ID,
			Role:       role,
			Spacing:    ld.Spacing,
			Multiplier: s.Def.LayerMultiplier(ld),
			SlideCount: len(ld.Slides),
			Depth:      ld.Depth,
			BaseY:      baseY,
			Axis:       scroll.NewAxis(),
			// Произвольное стартовое направление, чтобы засеять раскладку.
			Direction: scroll.DirectionRight,
			Trigger:   types.TriggerUser,
		}

		for i := range ld.Slides {
			sd := &ld.Slides[i]
			clr, err := render.ParseHexColor(sd.Color)
			if err != nil {
				log.Printf("slide %q: %v, using fallback color", sd.ID, err)
				clr = config.StageFloorColor
			}
			slideID := s.ECS.NewEntity()
			s.ECS.Slides[slideID] = &component.Slide{
				LayerID:  layerID,
				DefID:    sd.ID,
				Title:    sd.Title,
				Subtitle: sd.Subtitle,
				Ordinal:  i,
			}
			s.ECS.Positions[slideID] = &component.Position{}
			s.ECS.Renderables[slideID] = &component.Renderable{Color: clr}
		}
	}
}

// Update продвигает все системы. Порядок фиксирован: мастер, проекция
// на ведомые, физика, эффекты — всё в одном тике, без кадрового лага.
func (s *Stage) Update(deltaTime float64) {
	s.ECS.GameTime += deltaTime
	s.CarouselSystem.Update(deltaTime)
	s.ParallaxSystem.Update(deltaTime)
	s.SlingerSystem.Update(deltaTime)
	s.EffectSystem.Update(deltaTime)
}

// --- interfaces.PointerContext ---

func (s *Stage) PointerPosition() (float64, float64, bool) {
	return s.pointerX, s.pointerY, s.pointerKnown
}

func (s *Stage) GravityEnabled() bool {
	return s.gravityOn
}

// --- interfaces.StageBounds ---

// Bounds возвращает границы контейнера физики; нулевые значения в
// описании шоу означают весь экран.
func (s *Stage) Bounds() (left, top, right, bottom float64) {
	p := s.Def.Physics
	left, top = p.StageLeft, p.StageTop
	right, bottom = p.StageRight, p.StageBottom
	if right <= left {
		right = float64(config.ScreenWidth)
	}
	if bottom <= top {
		bottom = float64(config.ScreenHeight)
	}
	return left, top, right, bottom
}

// SetPointer обновляет последнюю известную позицию указателя.
func (s *Stage) SetPointer(x, y float64) {
	s.pointerX = x
	s.pointerY = y
	s.pointerKnown = true
}

// ToggleGravity переключает притяжение к указателю и сохраняет выбор.
func (s *Stage) ToggleGravity() {
	s.gravityOn = !s.gravityOn
	s.EventDispatcher.Dispatch(event.Event{Type: event.GravityToggled, Data: s.gravityOn})
	s.Session.SetGravityOn(s.gravityOn)
	if err := s.Session.Save(); err != nil {
		log.Printf("session save failed: %v", err)
	}
}

// ScrollToSlide — императивная прокрутка; делегируется мастеру.
func (s *Stage) ScrollToSlide(index int) {
	s.CarouselSystem.ScrollToSlide(index)
}

// MasterCarousel возвращает компонент мастер-слоя (для UI).
func (s *Stage) MasterCarousel() *component.Carousel {
	return s.ECS.Carousels[s.masterID]
}

// StableSlideInfo — данные последней стабилизации для инфо-панели.
func (s *Stage) StableSlideInfo() (title, subtitle string, index int) {
	return s.stableTitle, s.stableSubtitle, s.stableIndex
}

// refreshStableInfo подтягивает заголовок слайда мастера по индексу.
func (s *Stage) refreshStableInfo(normalized int) {
	for _, slide := range s.ECS.Slides {
		if slide.LayerID == s.masterID && slide.Ordinal == normalized {
			s.stableTitle = slide.Title
			s.stableSubtitle = slide.Subtitle
			s.stableIndex = normalized
			return
		}
	}
}

// StageEventListener реагирует на события систем: эффекты, инфо-панель,
// сохранение сессии.
type StageEventListener struct {
	stage *Stage
}

func (l *StageEventListener) OnEvent(e event.Event) {
	s := l.stage
	switch e.Type {
	case event.WallHit:
		if data, ok := e.Data.(event.WallHitData); ok {
			s.EffectSystem.SpawnRipple(data.X, data.Y, config.RippleColor)
		}
	case event.SlingerIdle:
		if data, ok := e.Data.(event.SlingerIdleData); ok {
			if sl := s.ECS.Slingers[data.Slinger]; sl != nil {
				s.EffectSystem.SpawnRipple(data.X, data.Y, render.WithAlpha(sl.Color, 120))
			}
		}
	case event.GravityToggled:
		// Включение притяжения отмечаем кольцом в точке указателя —
		// туда слингеры сейчас и потянутся.
		if on, ok := e.Data.(bool); ok && on && s.pointerKnown {
			s.EffectSystem.SpawnRipple(s.pointerX, s.pointerY, config.RippleColor)
		}
	case event.SlideStabilized:
		data, ok := e.Data.(event.SlideStabilizedData)
		if !ok {
			return
		}
		s.refreshStableInfo(data.Normalized)
		for slideID, slide := range s.ECS.Slides {
			if slide.LayerID == s.masterID && slide.Ordinal == data.Normalized {
				s.EffectSystem.FlashSlide(slideID)
			}
		}
		s.Session.SetLastSlide(data.Normalized)
		if err := s.Session.Save(); err != nil {
			log.Printf("session save failed: %v", err)
		}
	}
}
