package app

import (
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fizanhabeeb/gracepos/config"
	"github.com/fizanhabeeb/gracepos/internal/backup"
	"github.com/fizanhabeeb/gracepos/internal/domain"
	"github.com/fizanhabeeb/gracepos/internal/migration"
	"github.com/fizanhabeeb/gracepos/internal/pos"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	posStore  *pos.Store
	engine    *backup.Engine
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ DBProvider     = (*Application)(nil)
	_ ConfigProvider = (*Application)(nil)
	_ PosProvider    = (*Application)(nil)
	_ BackupProvider = (*Application)(nil)
	_ AppContext     = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

func (a *Application) Pos() *pos.Store {
	return a.posStore
}

func (a *Application) Backup() *backup.Engine {
	return a.engine
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
	a.posStore = pos.New(db)
	a.engine = backup.NewEngine(a.posStore)
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.GetLogDir(), cfg.Logger.Filename),
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	a.gormDB = getDatabase(cfg)
	zap.S().Infof("database open: %s", filepath.Join(cfg.GetDataDir(), cfg.Database.Path))

	if err := a.MigrateDB(); err != nil {
		zap.S().Errorf("database migration failed: %v", err)
	}

	a.posStore = pos.New(a.gormDB)
	a.engine = backup.NewEngine(a.posStore)

	// Drain the first-generation store before any screen reads anything.
	a.runLegacyMigration()

	a.checkSettings()
	a.checkDefaultCategories()

	a.initJob()
}

func getDatabase(cfg *config.AppConfig) *gorm.DB {
	path := filepath.Join(cfg.GetDataDir(), cfg.Database.Path)
	logLevel := gormlogger.Silent
	if cfg.Database.Debug {
		logLevel = gormlogger.Info
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		zap.S().Fatalf("database open failed: %v", err)
	}
	return db
}

func (a *Application) MigrateDB() error {
	return a.gormDB.Migrator().AutoMigrate(domain.Tables...)
}

func (a *Application) DropAll() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
}

// runLegacyMigration sequences the one-time legacy store drain at startup.
// A failed run logs and leaves the flag unset so the next start retries;
// startup itself is never blocked.
func (a *Application) runLegacyMigration() {
	legacyPath := a.appConfig.Legacy.Path
	if !filepath.IsAbs(legacyPath) {
		legacyPath = filepath.Join(a.appConfig.GetDataDir(), legacyPath)
	}
	mgr := migration.NewManager(legacyPath, a.posStore.Kv(), a.posStore.Orders(), a.posStore.Expenses())
	if err := mgr.Run(); err != nil {
		zap.S().Errorf("legacy migration error: %v", err)
	}
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	_ = zap.L().Sync()
}
