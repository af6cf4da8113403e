// Released under an MIT license. See LICENSE.

// Package config loads frac's settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Env names the environment variable that overrides the default path.
const Env = "FRAC_CONFIG"

// T (config) holds frac's settings.
type T struct {
	Float   bool   `toml:"float"`   // Follow numbers with a decimal approximation.
	History string `toml:"history"` // Path to the interactive history file.
	Mixed   bool   `toml:"mixed"`   // Display numbers as mixed numbers.
	Prompt  string `toml:"prompt"`  // Interactive prompt.
}

// Default returns the settings used when there is no configuration file.
func Default() T {
	return T{
		History: home(".frac_history"),
		Prompt:  "frac> ",
	}
}

// Load reads settings from the file at path. Settings the file omits keep
// their default values. A missing file is an error only if required is true.
func Load(path string, required bool) (T, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}

		return c, err
	}

	err = toml.Unmarshal(data, &c)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Path returns the configuration file to use. An explicit path wins,
// followed by $FRAC_CONFIG and then ~/.frac.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if p := os.Getenv(Env); p != "" {
		return p
	}

	return home(".frac.toml")
}

func home(name string) string {
	return filepath.Join(os.Getenv("HOME"), name)
}
