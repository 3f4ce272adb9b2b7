package ports

import "github.com/renato0307/stoplight/internal/domain"

// DisplaySink consumes display events in emission order
type DisplaySink interface {
	Emit(event domain.Event)
}

// DisplaySinkFunc adapts a function to DisplaySink
type DisplaySinkFunc func(event domain.Event)

func (f DisplaySinkFunc) Emit(event domain.Event) {
	f(event)
}
