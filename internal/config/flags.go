package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-backend storage backend: file or sqlite
//	-d vault directory for the file backend
//	-dsn SQLite database path for the sqlite backend
//	-breach-api breach range API base URL
//	-request-timeout breach API timeout (e.g., "5s")
//	-log-file log file path
//	-icon-dir directory with <host>.png icons
//	-passwords-dict common passwords list path
//	-words-dict dictionary words list path
//	-totp-interval TOTP tick period (e.g., "1s")
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("vault-guard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Storage.Backend, "backend", "", "Storage backend: file or sqlite")
	fs.StringVar(&cfg.Storage.Dir, "d", "", "Vault directory")
	fs.StringVar(&cfg.Storage.DB.DSN, "dsn", "", "SQLite database path")
	fs.StringVar(&cfg.Adapter.BreachAPIURL, "breach-api", "", "Breach range API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Breach API timeout (e.g., 5s)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.App.IconDir, "icon-dir", "", "Icon directory")
	fs.StringVar(&cfg.Dictionary.PasswordsPath, "passwords-dict", "", "Common passwords list path")
	fs.StringVar(&cfg.Dictionary.WordsPath, "words-dict", "", "Dictionary words list path")
	fs.DurationVar(&cfg.Workers.TOTPInterval, "totp-interval", 0, "TOTP tick period (e.g., 1s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
