// internal/interfaces/stage_context.go
package interfaces

// PointerContext определяет методы, которые SlingerSystem требует от Stage.
// Это помогает избежать циклических зависимостей.
type PointerContext interface {
	// PointerPosition — последняя известная позиция указателя.
	// ok == false, если указателя на сцене ещё не было.
	PointerPosition() (x, y float64, ok bool)
	// GravityEnabled — включено ли притяжение к указателю.
	GravityEnabled() bool
}

// StageBounds — границы контейнера для физики слингеров.
type StageBounds interface {
	Bounds() (left, top, right, bottom float64)
}
