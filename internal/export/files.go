package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// create opens path for writing, creating parent directories as needed.
func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	return os.Create(path)
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
