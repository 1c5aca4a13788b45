package httpserver

import (
	"context"
	"fmt"

	chatHTTP "novacart-support/internal/chat/delivery/http"
	chatUC "novacart-support/internal/chat/usecase"
	"novacart-support/internal/middleware"
	"novacart-support/internal/router"
	"novacart-support/internal/session"
	sessionRepo "novacart-support/internal/session/repository/postgre"
	supportRepo "novacart-support/internal/support/repository/postgre"
	supportQdrant "novacart-support/internal/support/repository/qdrant"
	supportUC "novacart-support/internal/support/usecase"

	"github.com/gin-gonic/gin"
)

// setupChatDomain wires the whole conversational pipeline: task handlers,
// intent router, session manager and conversation memory, then registers
// the chat routes.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	repo := supportRepo.New(srv.postgresDB, srv.l)
	faqRepo := supportQdrant.New(srv.qdrantClient, srv.embedder, srv.l)
	memoryRepo := sessionRepo.New(srv.postgresDB, srv.l)

	// 2. Task handlers
	handlers := supportUC.New(srv.l, srv.oracle, repo, faqRepo)

	// 3. Router and session manager
	intentRouter := router.New(srv.oracle, srv.l)
	sessions, err := session.NewManager(srv.sessionCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	// 4. Chat UseCase and HTTP handler
	uc := chatUC.New(srv.l, intentRouter, sessions, memoryRepo, handlers)
	h := chatHTTP.New(srv.l, uc)

	// 5. Routes: registers /api/v1/chat and /api/v1/chat/session/start
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
