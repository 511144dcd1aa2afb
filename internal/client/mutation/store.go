package mutation

import (
	"fmt"
	"sync"
)

// ActionKind тип действия над локальным представлением
type ActionKind int

const (
	// ActionOptimisticApply применяет ожидаемый результат мутации до подтверждения
	ActionOptimisticApply ActionKind = iota + 1
	// ActionAuthoritativeReplace заменяет состояние свежим чтением из леджера
	ActionAuthoritativeReplace
	// ActionRollback восстанавливает состояние после неудачной мутации
	ActionRollback
)

func (k ActionKind) String() string {
	switch k {
	case ActionOptimisticApply:
		return "optimistic_apply"
	case ActionAuthoritativeReplace:
		return "authoritative_replace"
	case ActionRollback:
		return "rollback"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Action типизированное действие над Store.
// Создается через OptimisticApply, AuthoritativeReplace или Rollback.
type Action[S any] struct {
	State    S
	Patch    func(S) S
	EntityID string
	Kind     ActionKind
}

// OptimisticApply действие оптимистичного изменения сущности entityID.
// patch не должен менять переданное состояние на месте.
func OptimisticApply[S any](entityID string, patch func(S) S) Action[S] {
	return Action[S]{Kind: ActionOptimisticApply, EntityID: entityID, Patch: patch}
}

// AuthoritativeReplace действие замены состояния авторитетным чтением.
// Если entityID задан, закрывается оптимистичная запись этой сущности,
// пустой entityID (полное обновление) закрывает все записи.
func AuthoritativeReplace[S any](entityID string, state S) Action[S] {
	return Action[S]{Kind: ActionAuthoritativeReplace, EntityID: entityID, State: state}
}

// Rollback действие отката сущности к переданному состоянию
func Rollback[S any](entityID string, state S) Action[S] {
	return Action[S]{Kind: ActionRollback, EntityID: entityID, State: state}
}

// Change уведомление подписчикам после каждого примененного действия
type Change[S any] struct {
	State      S
	EntityID   string
	Kind       ActionKind
	Generation uint64
}

// Authoritative сообщает, пришло ли состояние из леджера
func (c Change[S]) Authoritative() bool {
	return c.Kind == ActionAuthoritativeReplace || c.Kind == ActionRollback
}

type pendingPatch[S any] struct {
	prior      S
	generation uint64
}

// Store контейнер локального представления удаленного состояния.
// Все изменения идут через Dispatch и сериализуются, каждое увеличивает поколение.
type Store[S any] struct {
	state     S
	clone     func(S) S
	pending   map[string]pendingPatch[S]
	listeners []func(Change[S])

	generation uint64
	mu         sync.RWMutex
	dispatchMu sync.Mutex
}

// StoreOption настраивает Store
type StoreOption[S any] func(*Store[S])

// WithClone задает функцию глубокого копирования состояния.
// Без нее State возвращает состояние как есть.
func WithClone[S any](clone func(S) S) StoreOption[S] {
	return func(s *Store[S]) {
		s.clone = clone
	}
}

// NewStore создает Store с начальным состоянием
func NewStore[S any](initial S, opts ...StoreOption[S]) *Store[S] {
	s := &Store[S]{
		state:   initial,
		pending: make(map[string]pendingPatch[S]),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clone == nil {
		s.clone = func(v S) S { return v }
	}
	return s
}

// State возвращает копию текущего состояния
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.state)
}

// Generation возвращает номер последнего примененного действия
func (s *Store[S]) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Pending сообщает, есть ли у сущности неподтвержденное оптимистичное изменение
func (s *Store[S]) Pending(entityID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pending[entityID]
	return ok
}

// Prior возвращает состояние до оптимистичного изменения сущности
func (s *Store[S]) Prior(entityID string) (S, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pending[entityID]
	if !ok {
		var zero S
		return zero, false
	}
	return s.clone(p.prior), true
}

// Forget закрывает оптимистичную запись сущности, не меняя состояние.
// После этого Prior не вернет исходное состояние, а откат потребует свежего чтения.
func (s *Store[S]) Forget(entityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, entityID)
}

// Subscribe регистрирует слушателя изменений.
// Слушатели вызываются синхронно в порядке применения действий.
func (s *Store[S]) Subscribe(fn func(Change[S])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Dispatch применяет действие и возвращает новое поколение
func (s *Store[S]) Dispatch(a Action[S]) (uint64, error) {
	// dispatchMu упорядочивает и применение, и уведомления слушателей
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	switch a.Kind {
	case ActionOptimisticApply:
		if a.Patch == nil {
			s.mu.Unlock()
			return 0, fmt.Errorf("optimistic apply for %q: nil patch", a.EntityID)
		}
		prior := s.clone(s.state)
		s.state = a.Patch(s.clone(s.state))
		s.generation++
		// Первое оптимистичное изменение сущности запоминает исходное состояние
		if _, exists := s.pending[a.EntityID]; !exists {
			s.pending[a.EntityID] = pendingPatch[S]{prior: prior, generation: s.generation}
		}
	case ActionAuthoritativeReplace:
		s.state = s.clone(a.State)
		s.generation++
		if a.EntityID == "" {
			clear(s.pending)
		} else {
			delete(s.pending, a.EntityID)
		}
	case ActionRollback:
		s.state = s.clone(a.State)
		s.generation++
		delete(s.pending, a.EntityID)
	default:
		s.mu.Unlock()
		return 0, fmt.Errorf("unknown action kind %s", a.Kind)
	}

	change := Change[S]{
		Kind:       a.Kind,
		EntityID:   a.EntityID,
		Generation: s.generation,
		State:      s.clone(s.state),
	}
	listeners := make([]func(Change[S]), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}

	return change.Generation, nil
}
