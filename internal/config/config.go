// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// --- Карусель ---
	SlideWidth       = 260.0
	SlideHeight      = 160.0
	CarouselCenterY  = 430.0
	StabilizeDelay   = 0.4 // сек тишины после смены индекса до события стабилизации
	CarouselAhead    = 2   // сколько слайдов держим впереди при прокрутке вправо
	CarouselBehind   = 4   // сколько позади при прокрутке влево (асимметрия намеренная)
	CullWindow       = 2   // дальше этого числа слайдов от центра — скрываем
	MinSlideSpacing  = 1.0 // страховка от нулевого/отрицательного шага
	WheelFlickScale  = 260.0
	DragFlickScale   = 0.9 // доля скорости жеста, переходящая в инерцию

	// --- Слингеры ---
	SimStepsPerSecond  = 60.0
	SlingerDamping     = 0.98
	SlingerMinSpeed    = 0.5
	SlingerIdleSpeed   = 0.75
	WallRestitution    = 0.8
	GravityRange       = 300.0
	GravityDeadZone    = 8.0
	GravityGraceTime   = 0.5 // сек после броска, пока гравитация не действует
	OrbitDamping       = 0.85
	TrailWindow        = 0.1 // окно истории указателя, сек
	ThrowFactor        = 0.1
	DefaultGravityPull = 0.6

	// --- Эффекты и UI ---
	RippleDuration    = 0.6
	RippleMaxRadius   = 70.0
	HighlightDuration = 0.5
	IndicatorRadius   = 7.0
	IndicatorGap      = 24.0
	IndicatorY        = 760.0
	InfoPanelWidth    = 420.0
	InfoPanelHeight   = 84.0
	GravityButtonX    = 1220.0
	GravityButtonY    = 40.0
	GravityButtonSize = 16.0
	ClickDebounceTime = 100 // мс
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	StageFloorColor = color.RGBA{28, 28, 42, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 160, 255}
	CardStrokeColor = color.RGBA{255, 255, 255, 255}
	HighlightColor  = color.RGBA{255, 215, 0, 255}
	RippleColor     = color.RGBA{120, 180, 255, 200}
	DotActiveColor  = color.RGBA{240, 240, 240, 255}
	DotIdleColor    = color.RGBA{90, 90, 105, 255}
	GravityOnColor  = color.RGBA{70, 130, 180, 220}
	GravityOffColor = color.RGBA{90, 90, 105, 220}
	SlingerColors   = []color.RGBA{
		{255, 99, 99, 255},   // красный
		{99, 255, 140, 255},  // зелёный
		{99, 150, 255, 255},  // синий
		{230, 170, 60, 255},  // янтарный
		{190, 99, 230, 255},  // фиолетовый
	}
)
