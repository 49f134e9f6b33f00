// Package notify é o equivalente dos toasts do front: cada operação da
// camada de serviço termina emitindo exatamente uma notificação de
// sucesso, validação ou erro.
package notify

import (
	"fmt"
	"log"
	"sync"
)

type Kind string

const (
	KindSuccess    Kind = "success"
	KindError      Kind = "error"
	KindValidation Kind = "validation"
)

type Notification struct {
	Kind    Kind
	Message string
}

type Notifier interface {
	Success(message string)
	Error(message string)
	Validation(message string)
}

// Terminal escreve as notificações no stderr via log padrão.
type Terminal struct{}

func (Terminal) Success(message string)    { log.Printf("✔ %s", message) }
func (Terminal) Error(message string)      { log.Printf("✖ %s", message) }
func (Terminal) Validation(message string) { log.Printf("! %s", message) }

// Recorder acumula notificações; usado em testes no lugar do Terminal.
type Recorder struct {
	mu   sync.Mutex
	list []Notification
}

func (r *Recorder) Success(message string)    { r.record(KindSuccess, message) }
func (r *Recorder) Error(message string)      { r.record(KindError, message) }
func (r *Recorder) Validation(message string) { r.record(KindValidation, message) }

func (r *Recorder) record(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, Notification{Kind: kind, Message: message})
}

// All devolve uma cópia das notificações emitidas até aqui.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.list))
	copy(out, r.list)
	return out
}

// Last devolve a última notificação ou zero value.
func (r *Recorder) Last() Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.list) == 0 {
		return Notification{}
	}
	return r.list[len(r.list)-1]
}

func (n Notification) String() string {
	return fmt.Sprintf("[%s] %s", n.Kind, n.Message)
}
