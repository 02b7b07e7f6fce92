// internal/assets/fonts.go
package assets

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceManager кэширует начертания встроенного шрифта по размеру,
// чтобы каждый потребитель не парсил TTF заново.
type FaceManager struct {
	tt    *opentype.Font
	faces map[float64]font.Face
}

// NewFaceManager парсит встроенный Go Regular один раз.
// Внешних файлов шрифтов не требуется.
func NewFaceManager() *FaceManager {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// Встроенный шрифт: ошибка парсинга возможна только при порче бинаря.
		log.Fatal(err)
	}
	return &FaceManager{
		tt:    tt,
		faces: make(map[float64]font.Face),
	}
}

// Face возвращает кэшированное начертание указанного размера.
func (m *FaceManager) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	m.faces[size] = face
	return face
}
