// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "GOALTIME_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	boltFilePath   string
	sqliteFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "goaltime",
			configFileName: "config.yml",
			boltFileName:   "goaltime.db",
			sqliteFileName: "goaltime.sqlite",
			logFileName:    "goaltime.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func BoltFilePath() string {
	return Must().boltFilePath
}

func SQLiteFilePath() string {
	return Must().sqliteFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("goaltime_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("goaltime_%s.sqlite", env)
		p.logFileName = fmt.Sprintf("goaltime_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file path: %w", err)
	}

	p.boltFilePath, err = xdg.DataFile(filepath.Join(p.configDir, p.boltFileName))
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}

	p.sqliteFilePath, err = xdg.DataFile(
		filepath.Join(p.configDir, p.sqliteFileName),
	)
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}

	// xdg creates the parent directories, including log/
	p.logFilePath, err = xdg.DataFile(
		filepath.Join(p.configDir, "log", p.logFileName),
	)
	if err != nil {
		return fmt.Errorf("resolving log file path: %w", err)
	}

	return nil
}
