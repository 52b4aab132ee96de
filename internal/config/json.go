package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jbalodis/localnotes/internal/flagx"
	"github.com/jbalodis/localnotes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DataDir      string         `json:"data_dir"`
	DatabaseFile string         `json:"database_file"`
	ImagesDir    string         `json:"images_dir"`
	OpTimeout    timex.Duration `json:"op_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags; when neither is given, no JSON is
// loaded. Only fields present in the file override the current values.
// Panics on read or unmarshal errors (caller should recover if desired).
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

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.ImagesDir != "" {
		cfg.ImagesDir = jc.ImagesDir
	}
	if jc.OpTimeout.Duration != 0 {
		cfg.OpTimeout = time.Duration(jc.OpTimeout.Duration)
	}
}
