package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Name   string `yaml:"name" json:"name"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type AuthConfig struct {
	// Secret signs issued tokens; override it outside of development.
	Secret string `yaml:"secret" json:"secret"`
	// TokenExpireDays is the token lifetime in days.
	TokenExpireDays int `yaml:"token_expire_days" json:"token_expire_days"`
	// LogRetentionDays bounds how long auth_log rows are kept.
	LogRetentionDays int `yaml:"log_retention_days" json:"log_retention_days"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig  `yaml:"system" json:"system"`
	Web      WebConfig  `yaml:"web" json:"web"`
	Database DBConfig   `yaml:"database" json:"database"`
	Auth     AuthConfig `yaml:"auth" json:"auth"`
	Logger   LogConfig  `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = AppConfig{
	System: SysConfig{
		Appid:    "museme",
		Location: "Asia/Seoul",
		Workdir:  "/var/museme",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 5000,
	},
	Database: DBConfig{
		Type: "sqlite",
		Name: "museme",
		Host: "127.0.0.1",
		Port: 5432,
		User: "museme",
	},
	Auth: AuthConfig{
		Secret:           "your-secret-key-change-in-production",
		TokenExpireDays:  7,
		LogRetentionDays: 90,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/museme/logs/museme.log",
	},
}

func setEnvString(name string, val *string) {
	if v := os.Getenv(name); v != "" {
		*val = v
	}
}

func setEnvInt(name string, val *int) {
	if v := os.Getenv(name); v != "" {
		*val = cast.ToInt(v)
	}
}

func setEnvBool(name string, val *bool) {
	if v := os.Getenv(name); v != "" {
		*val = cast.ToBool(v)
	}
}

// LoadConfig reads the yaml configuration file and applies MUSEME_*
// environment overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvString("MUSEME_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvString("MUSEME_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBool("MUSEME_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvString("MUSEME_WEB_HOST", &cfg.Web.Host)
	setEnvInt("MUSEME_WEB_PORT", &cfg.Web.Port)

	setEnvString("MUSEME_DB_TYPE", &cfg.Database.Type)
	setEnvString("MUSEME_DB_NAME", &cfg.Database.Name)
	setEnvString("MUSEME_DB_HOST", &cfg.Database.Host)
	setEnvInt("MUSEME_DB_PORT", &cfg.Database.Port)
	setEnvString("MUSEME_DB_USER", &cfg.Database.User)
	setEnvString("MUSEME_DB_PASSWD", &cfg.Database.Passwd)

	setEnvString("MUSEME_AUTH_SECRET", &cfg.Auth.Secret)
	setEnvInt("MUSEME_AUTH_TOKEN_EXPIRE_DAYS", &cfg.Auth.TokenExpireDays)

	setEnvString("MUSEME_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBool("MUSEME_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvString("MUSEME_LOGGER_FILENAME", &cfg.Logger.Filename)

	return cfg
}

// InitDirs creates the working directory layout.
func (c *AppConfig) InitDirs() {
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "data"), 0o755)
	_ = os.MkdirAll(filepath.Join(c.System.Workdir, "logs"), 0o755)
}
