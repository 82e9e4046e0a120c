package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// accept both strings ("5s") and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
		IconDir string `json:"icon_dir"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Dir     string `json:"dir"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		BreachAPIURL   string   `json:"breach_api_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Dictionary struct {
		PasswordsPath string `json:"passwords_path"`
		WordsPath     string `json:"words_path"`
	} `json:"dictionary,omitempty"`

	Workers struct {
		TOTPInterval Duration `json:"totp_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
			IconDir: jsonCfg.App.IconDir,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Dir:     jsonCfg.Storage.Dir,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			BreachAPIURL:   jsonCfg.Adapter.BreachAPIURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Dictionary: Dictionary{
			PasswordsPath: jsonCfg.Dictionary.PasswordsPath,
			WordsPath:     jsonCfg.Dictionary.WordsPath,
		},
		Workers: Workers{
			TOTPInterval: time.Duration(jsonCfg.Workers.TOTPInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
