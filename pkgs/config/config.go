package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/database"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/utils"
	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// Configuration Structures
////////////////////////////////////////////////////////////////////////////////

// Config represents the main application configuration
type Config struct {
	Port     string                  `yaml:"port"`
	Debug    bool                    `yaml:"debug"`
	LogPath  string                  `yaml:"log_path"`
	Database database.DatabaseConfig `yaml:"database"`
}

func Default() *Config {
	return &Config{
		Port:    "8080",
		Debug:   false,
		LogPath: "./xguild.log",
		Database: database.DatabaseConfig{
			Type:     database.DATABASE_TYPE_SQLITE,
			Path:     "./data/xguild.db",
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			DBName:   "xguild",
		},
	}
}

////////////////////////////////////////////////////////////////////////////////
// Configuration Management Functions
////////////////////////////////////////////////////////////////////////////////

// ReadConfig reads configuration from the specified path. Keys missing from
// the file keep their default values.
func ReadConfig(path string) (*Config, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	result := Default()
	err = yaml.Unmarshal(data, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// WriteConfig writes configuration to the specified path
func WriteConfig(path string, conf *Config) error {
	if err := utils.EnsureParentDir(path); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, bytes.NewReader(data))
	return err
}

// LoadOrInit reads the config at path, writing the defaults there first when
// the file does not exist.
func LoadOrInit(path string) (*Config, error) {
	conf, err := ReadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		conf = Default()
		return conf, WriteConfig(path, conf)
	}
	return conf, err
}

////////////////////////////////////////////////////////////////////////////////
// Environment Overrides
////////////////////////////////////////////////////////////////////////////////

// ApplyEnv overrides the config with non-empty environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	overrides := []struct {
		key    string
		target *string
	}{
		{"PORT", &c.Port},
		{"LOG_PATH", &c.LogPath},
		{"DB_TYPE", &c.Database.Type},
		{"DB_PATH", &c.Database.Path},
		{"DB_HOST", &c.Database.Host},
		{"DB_PORT", &c.Database.Port},
		{"DB_USER", &c.Database.User},
		{"DB_PASSWORD", &c.Database.Password},
		{"DB_NAME", &c.Database.DBName},
	}
	for _, o := range overrides {
		if v := getenv(o.key); v != "" {
			*o.target = v
		}
	}
	if getenv("DEBUG") == "true" {
		c.Debug = true
	}
}
