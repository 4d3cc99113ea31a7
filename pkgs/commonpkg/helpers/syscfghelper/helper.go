package syscfghelper

import (
	"fmt"
	"io"
	"os"

	"github.com/WangWilly/xGuild/migration/automigrate"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/database"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/utils"
	"github.com/WangWilly/xGuild/pkgs/config"
	"github.com/WangWilly/xGuild/pkgs/logging"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

type CliParams struct {
	IsDebug    bool
	ConfigPath string
	Getenv     func(string) string
}

type helper struct {
	cliParams CliParams

	logFile   *os.File
	sysConfig *config.Config
	db        *sqlx.DB
}

// New loads the config, applies environment overrides and starts logging to
// the configured log file.
func New(cliParams CliParams) (*helper, error) {
	if cliParams.ConfigPath == "" {
		cliParams.ConfigPath = DEFAULT_CONF_FILE
	}
	if cliParams.Getenv == nil {
		cliParams.Getenv = os.Getenv
	}
	h := &helper{
		cliParams: cliParams,
	}
	if err := h.init(); err != nil {
		h.Close()
		return nil, err
	}
	return h, nil
}

func (h *helper) init() error {
	conf, err := config.LoadOrInit(h.cliParams.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	conf.ApplyEnv(h.cliParams.Getenv)
	if h.cliParams.IsDebug {
		conf.Debug = true
	}
	h.sysConfig = conf

	////////////////////////////////////////////////////////////////////////////

	var logOut io.Writer
	if conf.LogPath != "" {
		if err := utils.EnsureParentDir(conf.LogPath); err != nil {
			return fmt.Errorf("failed to make log dir: %w", err)
		}
		logFile, err := os.OpenFile(conf.LogPath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		h.logFile = logFile
		logOut = logFile
	}
	logging.InitLogger(conf.Debug, logOut)

	log.WithFields(log.Fields{
		"caller": "syscfghelper.init",
		"config": h.cliParams.ConfigPath,
		"db":     conf.Database.Type,
	}).Debug("config loaded")
	return nil
}

////////////////////////////////////////////////////////////////////////////////

func (h *helper) GetConfig() *config.Config {
	return h.sysConfig
}

// GetDB connects to the configured database and migrates it to the latest
// schema. The connection is reused by later calls and closed by Close.
func (h *helper) GetDB() (*sqlx.DB, error) {
	if h.db != nil {
		return h.db, nil
	}
	db, err := database.ConnectWithConfig(h.sysConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if err := automigrate.AutoMigrateUp(automigrate.AutoMigrateConfig{SqlxDB: db}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	h.db = db
	return db, nil
}

////////////////////////////////////////////////////////////////////////////////

func (h *helper) Close() {
	if h.db != nil {
		h.db.Close()
		h.db = nil
	}
	if h.logFile != nil {
		h.logFile.Close()
		h.logFile = nil
	}
}
