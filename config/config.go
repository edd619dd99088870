package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	Secret    string `yaml:"secret" json:"secret"`
	JwtExpiry int    `yaml:"jwt_expiry" json:"jwt_expiry"`
}

type DBConfig struct {
	Path  string `yaml:"path" json:"path"`
	Debug bool   `yaml:"debug" json:"debug"`
}

// LegacyConfig locates the first-generation unstructured store that the
// migration manager drains on startup.
type LegacyConfig struct {
	Path string `yaml:"path" json:"path"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Legacy   LegacyConfig `yaml:"legacy" json:"legacy"`
	Logger   LogConfig    `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return ensureDir(filepath.Join(c.System.Workdir, "logs"))
}

func (c *AppConfig) GetDataDir() string {
	return ensureDir(filepath.Join(c.System.Workdir, "data"))
}

func (c *AppConfig) GetBackupDir() string {
	return ensureDir(filepath.Join(c.System.Workdir, "backup"))
}

func ensureDir(path string) string {
	_ = os.MkdirAll(path, 0o755)
	return path
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "gracepos",
		Location: "Asia/Kolkata",
		Workdir:  "/var/gracepos",
	},
	Web: WebConfig{
		Host:      "127.0.0.1",
		Port:      1889,
		Secret:    "9b6de5cc-0001-1203-xxtt-0f568ac9da37",
		JwtExpiry: 120,
	},
	Database: DBConfig{
		Path: "gracepos.db",
	},
	Legacy: LegacyConfig{
		Path: "gracepos-legacy.db",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "gracepos.log",
	},
}

func LoadConfig(cfile string) *AppConfig {
	// start from defaults and overlay the yaml file when present
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("GRACEPOS_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("GRACEPOS_WEB_HOST", &cfg.Web.Host)
	setEnvValue("GRACEPOS_WEB_SECRET", &cfg.Web.Secret)
	setEnvValue("GRACEPOS_DB_PATH", &cfg.Database.Path)
	setEnvValue("GRACEPOS_LEGACY_PATH", &cfg.Legacy.Path)
	setEnvValue("GRACEPOS_LOGGER_MODE", &cfg.Logger.Mode)
	return cfg
}

func setEnvValue(name string, val *string) {
	if evalue := os.Getenv(name); evalue != "" {
		*val = evalue
	}
}
