package guia

import (
	"context"
	"sync"
	"time"

	rules "github.com/jhoicas/Guias-api/internal/domain/guia"
)

// session estado de un formulario abierto. mu serializa las operaciones sobre el borrador.
type session struct {
	mu        sync.Mutex
	draft     *rules.Draft
	catalogs  *Catalogs
	owner     rules.SessionContext
	expiresAt time.Time
}

// Store mapa en memoria de borradores con expiración por inactividad.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
	onEvict  func(n int)
}

// NewStore crea el almacén. onEvict se invoca con la cantidad de sesiones expiradas
// en cada barrido; puede ser nil.
func NewStore(ttl time.Duration, onEvict func(n int)) *Store {
	if onEvict == nil {
		onEvict = func(int) {}
	}
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
		onEvict:  onEvict,
	}
}

func (s *Store) put(id string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.expiresAt = s.now().Add(s.ttl)
	s.sessions[id] = sess
}

// get devuelve la sesión vigente y renueva su expiración.
func (s *Store) get(id string) (*session, bool) {
	s.mu.Lock()
	now := s.now()
	evicted := s.sweepLocked(now)
	sess, ok := s.sessions[id]
	if ok {
		sess.expiresAt = now.Add(s.ttl)
	}
	s.mu.Unlock()
	if evicted > 0 {
		s.onEvict(evicted)
	}
	return sess, ok
}

// expiry lee la expiración de la sesión bajo el lock del almacén.
func (s *Store) expiry(sess *session) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sess.expiresAt
}

func (s *Store) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len cantidad de sesiones en memoria (incluye expiradas aún no barridas).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep elimina las sesiones expiradas y devuelve cuántas quitó.
func (s *Store) Sweep() int {
	s.mu.Lock()
	n := s.sweepLocked(s.now())
	s.mu.Unlock()
	if n > 0 {
		s.onEvict(n)
	}
	return n
}

func (s *Store) sweepLocked(now time.Time) int {
	n := 0
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor barre periódicamente hasta que ctx termine.
func (s *Store) RunJanitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}
