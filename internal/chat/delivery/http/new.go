package http

import (
	"novacart-support/internal/chat"
	"novacart-support/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
