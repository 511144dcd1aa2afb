package mutation

import (
	"fmt"
	"sync"
)

// Guard не дает запустить вторую мутацию над сущностью, пока первая не завершилась.
// Каждый захват получает номер поколения, освобождение с устаревшим номером игнорируется.
type Guard struct {
	inflight map[string]uint64
	next     uint64
	mu       sync.Mutex
}

// NewGuard создает пустой Guard
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]uint64)}
}

// Acquire захватывает сущность. Пустой entityID (создание новой сущности) не блокируется.
// Возвращает функцию освобождения или ErrEntityBusy.
func (g *Guard) Acquire(entityID string) (func(), error) {
	if entityID == "" {
		return func() {}, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if gen, busy := g.inflight[entityID]; busy {
		return nil, fmt.Errorf("%w: %s (generation %d)", ErrEntityBusy, entityID, gen)
	}

	g.next++
	gen := g.next
	g.inflight[entityID] = gen

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			if g.inflight[entityID] == gen {
				delete(g.inflight, entityID)
			}
		})
	}, nil
}

// Busy сообщает, выполняется ли мутация над сущностью
func (g *Guard) Busy(entityID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inflight[entityID]
	return busy
}
