package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/bbparse/db"
	"github.com/Drolfothesgnir/bbparse/tmpstore"
	"github.com/Drolfothesgnir/bbparse/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	ParseURL     = "/parse"
	DocumentsURL = "/documents"
)

type Service struct {
	config util.Config
	store  db.Store
	cache  tmpstore.Store
	server *http.Server
	router *gin.Engine
}

// Returns new service instance with provided config, document store and parse cache.
// The cache is optional: with a nil cache every request is parsed from scratch.
func NewService(
	config util.Config,
	store db.Store,
	cache tmpstore.Store,
) (*Service, error) {
	addr, err := config.ListenAddress()
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP server address: %w", err)
	}

	service := &Service{
		config: config,
		store:  store,
		cache:  cache,
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)
	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
