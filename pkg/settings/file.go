package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a Store backed by a YAML file. Values are loaded once at
// open and every write rewrites the file, so the store reflects the
// file as of Open plus this process's writes.
type File struct {
	path   string
	values map[string]bool
}

// Open reads the settings file at path, creating an empty store if the
// file does not exist yet.
func Open(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f.values); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return f, nil
}

// Bool returns the value for key and whether it was present.
func (f *File) Bool(key string) (bool, bool) {
	v, ok := f.values[key]
	return v, ok
}

// SetBool stores value under key and rewrites the file.
func (f *File) SetBool(key string, value bool) error {
	f.values[key] = value
	return f.flush()
}

// Delete removes key and rewrites the file.
func (f *File) Delete(key string) error {
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

func (f *File) flush() error {
	data, err := yaml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
