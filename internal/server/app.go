// Package server initializes and runs the application server. It selects the
// storage backend, wires the services, handles graceful shutdown and starts
// the HTTP API.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/datachart/internal/logging"
	"github.com/dmitrijs2005/datachart/internal/server/config"
	"github.com/dmitrijs2005/datachart/internal/server/httpapi"
	"github.com/dmitrijs2005/datachart/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/datachart/internal/server/services"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	repoManager   repomanager.RepositoryManager
	userService   *services.UserService
	ingestService *services.IngestService
	queryService  *services.QueryService
}

// newRepositoryManager picks the storage backend: PostgreSQL when a DSN is
// configured, the flat-file store otherwise.
func newRepositoryManager(c *config.Config) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN != "" {
		return repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
	}
	return repomanager.NewFileRepositoryManager(c.DataDir)
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	rm, err := newRepositoryManager(c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	archive := services.NewArchive(c)

	us := services.NewUserService(rm.Users(), c)
	is := services.NewIngestService(rm.Datasets(), archive)
	qs := services.NewQueryService(rm.Datasets(), archive)

	return &App{
		config:        c,
		logger:        logger,
		repoManager:   rm,
		userService:   us,
		ingestService: is,
		queryService:  qs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.ingestService, app.queryService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
