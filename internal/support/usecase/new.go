package usecase

import (
	"novacart-support/internal/support/repository"
	"novacart-support/pkg/groq"
	pkgLog "novacart-support/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	oracle  groq.IGroq
	repo    repository.Repository
	faqRepo repository.FAQRepository
}

// New creates a new support UseCase instance.
func New(
	l pkgLog.Logger,
	oracle groq.IGroq,
	repo repository.Repository,
	faqRepo repository.FAQRepository,
) *implUseCase {
	return &implUseCase{
		l:       l,
		oracle:  oracle,
		repo:    repo,
		faqRepo: faqRepo,
	}
}
