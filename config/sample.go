package config

import (
	"encoding/json"
	"errors"
	"os"

	_ "github.com/artie-nazarov/CULgebra/env"
)

// CreateSample creates a sample configuration file.
func CreateSample(path string) error {
	sample := Config{
		Device: Device{
			Capacity: DEVICE_CAPACITY_DEFAULT,
			Name:     "device0",
		},
		Database: Database{
			Sqlite: "./matrixstore.db",
		},
		LogLevel: LogLevelInfo,
	}
	raw, err := json.MarshalIndent(sample, "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}
	return nil
}
