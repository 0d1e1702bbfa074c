// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package envfile loads KEY=value settings from a dotenv file into the
// process environment before configuration is read, so LESSON_ENGINE_*
// overrides can live next to the working directory.
package envfile

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// Load reads the dotenv file at path and sets each variable that is not
// already present in the environment. It returns the names it applied,
// sorted. A missing file is not an error.
func Load(path string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	var applied []string
	for key, value := range values {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return nil, fmt.Errorf("setting %s: %w", key, err)
		}
		applied = append(applied, key)
	}
	sort.Strings(applied)
	return applied, nil
}
