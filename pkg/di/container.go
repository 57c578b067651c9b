package di

import (
	"fmt"
	"io"

	"gorm.io/gorm"

	"taskmanager-api/application/serviceimpl"
	"taskmanager-api/domain/ports"
	"taskmanager-api/domain/repositories"
	"taskmanager-api/domain/services"
	"taskmanager-api/infrastructure/messaging"
	natspkg "taskmanager-api/infrastructure/nats"
	"taskmanager-api/infrastructure/postgres"
	"taskmanager-api/infrastructure/sqlite"
	"taskmanager-api/interfaces/api/handlers"
	"taskmanager-api/pkg/config"
	"taskmanager-api/pkg/logger"
	"taskmanager-api/pkg/scheduler"
)

const healthProbeJobID = "database-health-probe"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB      // DB_DRIVER=postgres
	SQLiteStore    *sqlite.Store // DB_DRIVER=sqlite
	Pinger         repositories.Pinger
	NATSClient     *natspkg.Client // nil = ปิด task events
	TaskEvents     ports.TaskEventPublisherPort
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	PasswordHasher services.PasswordHasher
	TokenService   services.TokenService
	UserService    services.UserService
	TaskService    services.TaskService
	HealthService  services.HealthService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	switch c.Config.Database.Driver {
	case "sqlite":
		store, err := sqlite.Open(c.Config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open sqlite store: %w", err)
		}
		c.SQLiteStore = store
		c.Pinger = store
		logger.Info("SQLite store opened", "path", c.Config.Database.Path)

	default:
		db, err := postgres.NewDatabase(postgres.DatabaseConfig{
			Host:     c.Config.Database.Host,
			Port:     c.Config.Database.Port,
			User:     c.Config.Database.User,
			Password: c.Config.Database.Password,
			DBName:   c.Config.Database.DBName,
			SSLMode:  c.Config.Database.SSLMode,
		})
		if err != nil {
			return err
		}
		c.DB = db

		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		c.Pinger = postgres.NewPinger(db)
		logger.Info("Database connected and migrated",
			"host", c.Config.Database.Host,
			"database", c.Config.Database.DBName,
		)
	}

	c.initTaskEvents()
	return nil
}

// initTaskEvents: NATS เป็น optional ต่อไม่ได้ก็ใช้ noop publisher
func (c *Container) initTaskEvents() {
	c.TaskEvents = messaging.NewNoopTaskEventPublisher()

	if c.Config.NATS.URL == "" {
		logger.Info("NATS_URL not set, task events disabled")
		return
	}

	client, err := natspkg.NewClient(natspkg.ClientConfig{
		URL:  c.Config.NATS.URL,
		Name: c.Config.App.Name,
	})
	if err != nil {
		logger.Warn("NATS unavailable, task events disabled", "url", c.Config.NATS.URL, "error", err)
		return
	}

	c.NATSClient = client
	c.TaskEvents = messaging.NewNATSTaskEventPublisher(client, c.Config.NATS.SubjectPrefix)
	logger.Info("Task events enabled", "subject_prefix", c.Config.NATS.SubjectPrefix)
}

func (c *Container) initRepositories() {
	if c.SQLiteStore != nil {
		c.UserRepository = sqlite.NewUserRepository(c.SQLiteStore)
		c.TaskRepository = sqlite.NewTaskRepository(c.SQLiteStore)
	} else {
		c.UserRepository = postgres.NewUserRepository(c.DB)
		c.TaskRepository = postgres.NewTaskRepository(c.DB)
	}
	logger.Info("Repositories initialized", "driver", c.Config.Database.Driver)
}

func (c *Container) initServices() {
	c.PasswordHasher = serviceimpl.NewBcryptHasher(c.Config.Password.BcryptCost)
	c.TokenService = serviceimpl.NewJWTService(c.Config.JWT.Secret, c.Config.JWT.TTL)
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.PasswordHasher, c.TokenService)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TaskEvents)
	c.HealthService = serviceimpl.NewHealthService(c.Pinger)

	if c.Config.IsDevelopment() && c.Config.JWT.Secret == config.DevJWTSecret {
		logger.Warn("Using development JWT secret, set JWT_SECRET before deploying")
	}
	logger.Info("Services initialized", "token_ttl", c.Config.JWT.TTL.String())
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	if err := c.EventScheduler.AddIntervalJob(healthProbeJobID, c.Config.HealthCheck.Interval, c.HealthService.Probe); err != nil {
		return fmt.Errorf("failed to schedule health probe: %w", err)
	}

	c.EventScheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	closers := []struct {
		name   string
		closer io.Closer
	}{
		// publisher เป็นเจ้าของ NATS connection และ drain ให้เอง
		{"task events", c.TaskEvents},
		{"SQLite store", sqliteCloser(c.SQLiteStore)},
	}
	for _, cl := range closers {
		if cl.closer == nil {
			continue
		}
		if err := cl.closer.Close(); err != nil {
			logger.Warn("Failed to close "+cl.name, "error", err)
		} else {
			logger.Info(cl.name + " closed")
		}
	}

	if c.DB != nil {
		if err := postgres.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

// typed nil pointer ใน interface ไม่ใช่ nil จึงต้องแปลงก่อน
func sqliteCloser(s *sqlite.Store) io.Closer {
	if s == nil {
		return nil
	}
	return s
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:   c.UserService,
		TaskService:   c.TaskService,
		HealthService: c.HealthService,
		AppName:       c.Config.App.Name,
	}
}
