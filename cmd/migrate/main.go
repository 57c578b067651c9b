package main

import (
	"flag"
	"fmt"
	"os"

	"taskmanager-api/domain/models"
	"taskmanager-api/infrastructure/postgres"
	"taskmanager-api/infrastructure/sqlite"
	"taskmanager-api/pkg/config"
	"taskmanager-api/pkg/logger"
)

// migrate สร้าง schema โดยไม่ต้อง start server
// ใช้ -reset เพื่อลบ tasks และ users ทิ้งก่อน (ข้อมูลหายหมด)
func main() {
	reset := flag.Bool("reset", false, "drop tasks and users tables before migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger.SetDefault(logger.New(os.Stdout, "text", cfg.Log.Level))

	switch cfg.Database.Driver {
	case "sqlite":
		err = migrateSQLite(cfg.Database.Path, *reset)
	default:
		err = migratePostgres(cfg.Database, *reset)
	}
	if err != nil {
		logger.Error("Migration failed", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}

	logger.Info("Migration completed", "driver", cfg.Database.Driver, "reset", *reset)
}

func migratePostgres(dbCfg config.DatabaseConfig, reset bool) error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     dbCfg.Host,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DBName:   dbCfg.DBName,
		SSLMode:  dbCfg.SSLMode,
	})
	if err != nil {
		return err
	}
	defer postgres.Close(db)

	if reset {
		// tasks ก่อน users เพราะมี foreign key
		if err := db.Migrator().DropTable(&models.Task{}, &models.User{}); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
		logger.Warn("Dropped tables", "tables", "tasks,users")
	}

	return postgres.Migrate(db)
}

func migrateSQLite(path string, reset bool) error {
	if reset {
		// WAL mode ทิ้งไฟล์ -wal กับ -shm ไว้ข้างๆ
		for _, p := range []string{path, path + "-wal", path + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		logger.Warn("Removed SQLite database", "path", path)
	}

	// Open สร้าง schema ให้เอง
	store, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	return store.Close()
}
