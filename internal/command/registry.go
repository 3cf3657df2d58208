package command

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"sync"
)

// commandNamePattern задаёт strict kebab-case без завершающего и двойного дефиса.
var commandNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Registry сопоставляет имена команд glctl с обработчиками.
// Безопасен для конкурентного использования.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// global наполняется через handlers.RegisterAll() и читается Runner-ом.
var global = NewRegistry()

// Register добавляет обработчик. Ошибка регистрации означает ошибку
// в коде glctl, поэтому Register паникует, если:
//   - h == nil
//   - h.Name() пустое или не в формате kebab-case
//   - команда с таким именем уже зарегистрирована
func (r *Registry) Register(h Handler) {
	if h == nil {
		panic("command: nil handler")
	}
	name := h.Name()
	switch {
	case name == "":
		panic("command: empty handler name")
	case !commandNamePattern.MatchString(name):
		panic("command: invalid handler name format (must be kebab-case): " + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("command: duplicate handler registration for %s (%T)", name, prev))
	}
	r.handlers[name] = h
}

// Get возвращает обработчик по имени.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// All возвращает копию реестра.
func (r *Registry) All() map[string]Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.handlers)
}

// Names возвращает имена команд в алфавитном порядке.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.handlers))
}

// Register регистрирует обработчик в глобальном реестре.
func Register(h Handler) { global.Register(h) }

// Get ищет обработчик в глобальном реестре.
func Get(name string) (Handler, bool) { return global.Get(name) }

// All возвращает копию глобального реестра.
func All() map[string]Handler { return global.All() }

// Names возвращает отсортированные имена команд глобального реестра.
func Names() []string { return global.Names() }
