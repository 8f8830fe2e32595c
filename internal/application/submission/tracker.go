package submission

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Catalogo-admin/internal/domain"
)

// State estado de un formulario de envío (categoría, atributo, valor o variante).
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Event evento que dispara una transición.
type Event int

const (
	Submit Event = iota
	Succeed
	Fail
)

func (e Event) String() string {
	switch e {
	case Submit:
		return "submit"
	case Succeed:
		return "succeed"
	case Fail:
		return "fail"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Next transición pura Idle -> Submitting -> (Succeeded | Failed).
// Un Submit mientras hay otro en curso se rechaza con ErrSubmissionInFlight (no se encola).
// Succeeded y Failed vuelven a Submitting con el siguiente Submit; no hay reintento automático.
func Next(s State, e Event) (State, error) {
	switch e {
	case Submit:
		if s == Submitting {
			return s, domain.ErrSubmissionInFlight
		}
		return Submitting, nil
	case Succeed, Fail:
		if s != Submitting {
			return s, fmt.Errorf("transición inválida %s -> %s", s, e)
		}
		if e == Succeed {
			return Succeeded, nil
		}
		return Failed, nil
	}
	return s, fmt.Errorf("evento desconocido %s", e)
}

// Tracker guarda el estado por clave de mutación (ej. "category:upsert:12").
// Garantiza a lo sumo un envío en curso por clave.
type Tracker struct {
	mu     sync.Mutex
	states map[string]State
}

// NewTracker construye un tracker vacío.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]State)}
}

// State estado actual de key (Idle si no hay envío en curso).
func (t *Tracker) State(key string) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[key]
}

// Fire aplica el evento a key.
func (t *Tracker) Fire(key string, e Event) (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, err := Next(t.states[key], e)
	if err != nil {
		return t.states[key], err
	}
	t.states[key] = next
	return next, nil
}

// Run envuelve fn con Submit y Succeed/Fail. Si ya hay un envío en curso para key,
// fn no se ejecuta y se devuelve ErrSubmissionInFlight. Al terminar (incluso con panic)
// la clave se libera y vuelve a leerse como Idle.
func (t *Tracker) Run(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if _, err := t.Fire(key, Submit); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			t.finish(key, Fail)
			panic(r)
		}
	}()
	if err := fn(ctx); err != nil {
		t.finish(key, Fail)
		return err
	}
	t.finish(key, Succeed)
	return nil
}

// finish aplica el evento terminal y borra la clave para que el mapa no crezca.
func (t *Tracker) finish(key string, e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := Next(t.states[key], e); err == nil {
		delete(t.states, key)
	}
}
