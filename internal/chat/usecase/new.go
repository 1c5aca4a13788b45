package usecase

import (
	"novacart-support/internal/router"
	"novacart-support/internal/session"
	sessionrepo "novacart-support/internal/session/repository"
	"novacart-support/internal/support"
	pkgLog "novacart-support/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	router   router.Router
	sessions *session.Manager
	memory   sessionrepo.Repository
	support  support.UseCase
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	r router.Router,
	sessions *session.Manager,
	memory sessionrepo.Repository,
	supportUC support.UseCase,
) *implUseCase {
	return &implUseCase{
		l:        l,
		router:   r,
		sessions: sessions,
		memory:   memory,
		support:  supportUC,
	}
}
