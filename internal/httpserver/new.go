package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"novacart-support/pkg/groq"
	"novacart-support/pkg/log"
	"novacart-support/pkg/qdrant"
	"novacart-support/pkg/voyage"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared collaborators, consumed by the domain setup files.
	postgresDB   *sql.DB
	oracle       groq.IGroq
	embedder     voyage.IVoyage
	qdrantClient *qdrant.Client

	// Session cache and throttle tuning.
	sessionCacheSize int
	rateRPS          float64
	rateBurst        int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB   *sql.DB
	Oracle       groq.IGroq
	Embedder     voyage.IVoyage
	QdrantClient *qdrant.Client

	SessionCacheSize int
	RateRPS          float64
	RateBurst        int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		postgresDB:       cfg.PostgresDB,
		oracle:           cfg.Oracle,
		embedder:         cfg.Embedder,
		qdrantClient:     cfg.QdrantClient,
		sessionCacheSize: cfg.SessionCacheSize,
		rateRPS:          cfg.RateRPS,
		rateBurst:        cfg.RateBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.oracle == nil {
		return errors.New("oracle client is required")
	}
	return nil
}
