package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rinha-backend/internal/config"
	"rinha-backend/internal/infrastructure/database"
	"rinha-backend/pkg/logger"

	personHandler "rinha-backend/internal/domains/person/handler"
	personRepo "rinha-backend/internal/domains/person/repository"
	personService "rinha-backend/internal/domains/person/service"
)

// Container holds the application's dependency graph
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB

	// Person domain
	PersonRepo    personRepo.RepositoryInterface
	PersonService personService.ServiceInterface
	PersonHandler *personHandler.PersonHandler
}

// NewContainer builds the graph in dependency order:
// config, logger, database, schema, repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("Initializing container")

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	c.initPerson()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	dbCfg := &c.Config.Database

	if dbCfg.MigrateOnStart {
		if err := database.Migrate(ctx, dbCfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	c.DB = database.NewPostgresDB(dbCfg)
	if err := c.DB.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func (c *Container) initPerson() {
	c.PersonRepo = personRepo.NewPostgresRepository(c.DB.Pool)
	c.PersonService = personService.NewPersonService(c.PersonRepo)
	c.PersonHandler = personHandler.NewPersonHandler(c.PersonService)
}

// Cleanup releases infrastructure resources
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}
}
