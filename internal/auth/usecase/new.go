package usecase

import (
	"novacart-support/internal/auth/repository"
	pkgLog "novacart-support/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{l: l, repo: repo}
}
