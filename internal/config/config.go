package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultDataPath is where the external pipeline stage writes the merged
// corpus table.
const DefaultDataPath = "outdir/merged.json"

const rcName = ".sentbrowserc"

// Config holds the session settings read from the rc file or environment.
type Config struct {
	DataPath     string
	StartChapter int
}

// DefaultPath returns the rc file location in the user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return rcName
	}
	return filepath.Join(home, rcName)
}

// Load reads the rc file at path and applies environment overrides
// (SENTBROWSE_DATA, SENTBROWSE_CHAPTER). A missing file is not an error:
// the defaults plus environment still yield a usable config.
func Load(path string) (Config, error) {
	cfg := Config{DataPath: DefaultDataPath, StartChapter: 1}

	data, err := os.ReadFile(path)
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.TrimSpace(parts[1])
			switch key {
			case "DATA_PATH":
				cfg.DataPath = val
			case "START_CHAPTER":
				if n, err := strconv.Atoi(val); err == nil {
					cfg.StartChapter = n
				}
			}
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	if v := os.Getenv("SENTBROWSE_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("SENTBROWSE_CHAPTER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.StartChapter = n
		}
	}
	return cfg, nil
}

// Save writes the config to path in the rc KEY=VALUE format.
func Save(path string, cfg Config) error {
	if cfg.DataPath == "" {
		return fmt.Errorf("empty data path")
	}
	content := fmt.Sprintf("DATA_PATH=%s\nSTART_CHAPTER=%d\n", cfg.DataPath, cfg.StartChapter)
	return os.WriteFile(path, []byte(content), 0o600)
}
