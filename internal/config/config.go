// Package config resolves the data directory and persists the small local
// state that lives outside the collection store: the in-flight call session
// and the monitor's filter state.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/marcus/cn/internal/callsession"
)

const configFile = "config.json"

// Config is the local config state stored beside the database
type Config struct {
	Session *callsession.Session `json:"session,omitempty"`

	// Monitor filter state
	SearchQuery  string `json:"search_query,omitempty"`
	GroupMode    string `json:"group_mode,omitempty"`
	StatusFilter string `json:"status_filter,omitempty"`
}

// DataDir resolves the data directory: explicit flag, then CN_DATA_DIR, then
// the XDG data home.
func DataDir(override string) string {
	if override != "" {
		return override
	}
	if dir := os.Getenv("CN_DATA_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, "cn")
}

// LoadEnv loads a .env file from the working directory when present, for API
// credentials used by import and extraction. A missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads the config from disk. A missing file yields an empty config.
func Load(dataDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(dataDir string, cfg *Config) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	configPath := filepath.Join(dataDir, configFile)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dataDir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, configPath)
}

// LoadSession returns the persisted call session, or an idle one
func LoadSession(dataDir string) (*callsession.Session, error) {
	cfg, err := Load(dataDir)
	if err != nil {
		return nil, err
	}
	if cfg.Session == nil {
		return callsession.New(), nil
	}
	return cfg.Session, nil
}

// SaveSession persists the call session; an idle session is stored as absent
func SaveSession(dataDir string, s *callsession.Session) error {
	cfg, err := Load(dataDir)
	if err != nil {
		return err
	}
	if s == nil || !s.Active() {
		cfg.Session = nil
	} else {
		cfg.Session = s
	}
	return Save(dataDir, cfg)
}
