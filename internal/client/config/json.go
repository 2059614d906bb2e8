package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/noteskeeper/internal/flagx"
	"github.com/dmitrijs2005/noteskeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	DatabasePath   string         `json:"database_path"`
	SecretPath     string         `json:"secret_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. When no such flag is given, nothing happens. Read and
// unmarshal errors panic; the caller may recover if desired. Only fields
// present in the file (non-zero after unmarshal) overwrite cfg.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SecretPath != "" {
		cfg.SecretPath = jc.SecretPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
