package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// LoadFolder reads all known source files from dataDir, plus the config
// source from configDir (which defaults to dataDir). The files are read
// concurrently. A missing file is not an error and leaves its source absent
// from the set; a file that exists but cannot be parsed is.
func LoadFolder(dataDir, configDir string) (Set, error) {
	if configDir == "" {
		configDir = dataDir
	}

	set := make(Set, len(fileNames))
	var mu sync.Mutex
	var g errgroup.Group

	for name, file := range fileNames {
		dir := dataDir
		if name == Config {
			dir = configDir
		}
		path := filepath.Join(dir, file)

		g.Go(func() error {
			payload, err := loadFile(path)
			if err != nil {
				return err
			}
			if payload == nil {
				return nil
			}
			mu.Lock()
			set[name] = payload
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

// loadFile parses one YAML file into an untyped payload. A missing file
// yields nil without error.
func loadFile(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read source file %s", path),
			Cause:   err,
		}
	}

	var payload any
	if err := yaml.Unmarshal(content, &payload); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to parse YAML in %s", path),
			Cause:   err,
		}
	}

	return payload, nil
}

// LoadInto parses a single self-contained YAML file directly into out, for
// the single-file input modes. Unlike folder sources the file must exist.
func LoadInto(path string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	if err := yaml.Unmarshal(content, out); err != nil {
		return &LoadError{
			Message: fmt.Sprintf("failed to parse YAML in %s", path),
			Cause:   err,
		}
	}

	return nil
}
