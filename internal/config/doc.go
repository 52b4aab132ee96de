// Package config loads runtime configuration for the notes keeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory holding the database and image files
//	-o int      per-operation storage timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "5s" or integer nanoseconds:
//
//	{
//	  "data_dir": ".localnotes",
//	  "database_file": "notes.db",
//	  "images_dir": "images",
//	  "op_timeout": "5s"
//	}
package config
