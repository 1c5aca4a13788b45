package httpserver

import (
	"context"

	authHTTP "novacart-support/internal/auth/delivery/http"
	authRepo "novacart-support/internal/auth/repository/postgre"
	authUC "novacart-support/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// setupAuthDomain initializes the auth domain and registers its routes.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := authRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := authUC.New(srv.l, repo)

	// 3. HTTP Handler
	h := authHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/auth/{signup,login}
	authHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
