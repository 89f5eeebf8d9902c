package scenario

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a scenario TOML file. A missing file yields the default
// scenario with no error; fields absent from the file keep their defaults.
// The loader does not validate ranges; nonsensical values degrade
// gracefully in the engine rather than erroring here.
func LoadFile(path string) (Scenario, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading scenario: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing scenario: %w", err)
	}

	return s, nil
}

// SaveFile writes the scenario to a TOML file, creating or truncating it.
func SaveFile(path string, s Scenario) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating scenario file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	return nil
}
