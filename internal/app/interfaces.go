package app

import (
	"gorm.io/gorm"

	"github.com/fizanhabeeb/gracepos/config"
	"github.com/fizanhabeeb/gracepos/internal/backup"
	"github.com/fizanhabeeb/gracepos/internal/pos"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// PosProvider provides the domain accessors
type PosProvider interface {
	Pos() *pos.Store
}

// BackupProvider provides the backup/restore engine
type BackupProvider interface {
	Backup() *backup.Engine
}

// AppContext combines all provider interfaces for full application context
type AppContext interface {
	DBProvider
	ConfigProvider
	PosProvider
	BackupProvider

	// Application lifecycle methods
	MigrateDB() error
	DropAll()
	Release()
}
