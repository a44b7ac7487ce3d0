package repository

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validateName rejects anything that is not a single plain path segment.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("storage: invalid asset name %q", name)
	}
	return nil
}
