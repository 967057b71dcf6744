package config

import (
	"encoding/json"
	"fmt"

	_ "github.com/artie-nazarov/CULgebra/env"
)

// ParseConfig parses the raw JSON configuration.
func ParseConfig(raw []byte) (config Config, err error) {
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %v", err)
	}
	return config, nil
}

type Config struct {
	Device   Device   `json:"device"`
	Database Database `json:"database"`
	LogLevel LogLevel `json:"log_level"`
}
