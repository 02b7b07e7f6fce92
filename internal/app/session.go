// internal/app/session.go
package app

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SessionData — то, что переживает перезапуск: последний стабильный
// слайд и состояние переключателя гравитации.
type SessionData struct {
	LastSlide int  `yaml:"lastSlide"`
	GravityOn bool `yaml:"gravityOn"`
}

// DefaultSessionData возвращает состояние по умолчанию.
func DefaultSessionData() SessionData {
	return SessionData{
		LastSlide: 0,
		GravityOn: true,
	}
}

// Session хранит и восстанавливает состояние между запусками через
// gdata. Nil-менеджер — деградация до значений по умолчанию в памяти.
type Session struct {
	gdataManager *gdata.Manager
	data         SessionData
}

const (
	sessionObject   = "session"
	sessionProperty = "stage"
)

// NewSession создаёт сессию и пытается загрузить сохранённое состояние.
// Ошибка загрузки не фатальна: остаются значения по умолчанию.
func NewSession(gdataManager *gdata.Manager) *Session {
	s := &Session{
		gdataManager: gdataManager,
		data:         DefaultSessionData(),
	}
	if err := s.Load(); err != nil {
		log.Printf("session: failed to load saved state: %v (using defaults)", err)
	}
	return s
}

// Load читает состояние из gdata. Отсутствие файла — не ошибка.
func (s *Session) Load() error {
	if s.gdataManager == nil {
		s.data = DefaultSessionData()
		return nil
	}
	if !s.gdataManager.ObjectPropExists(sessionObject, sessionProperty) {
		s.data = DefaultSessionData()
		return nil
	}
	raw, err := s.gdataManager.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		s.data = DefaultSessionData()
		return fmt.Errorf("failed to load session: %w", err)
	}
	var loaded SessionData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		s.data = DefaultSessionData()
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}
	s.data = loaded
	return nil
}

// Save пишет состояние в gdata. В деградированном режиме — no-op.
func (s *Session) Save() error {
	if s.gdataManager == nil {
		return nil
	}
	raw, err := yaml.Marshal(&s.data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(sessionObject, sessionProperty, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *Session) LastSlide() int {
	return s.data.LastSlide
}

func (s *Session) SetLastSlide(idx int) {
	s.data.LastSlide = idx
}

func (s *Session) GravityOn() bool {
	return s.data.GravityOn
}

func (s *Session) SetGravityOn(on bool) {
	s.data.GravityOn = on
}
