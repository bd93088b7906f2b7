package magetasks

import (
	"errors"
)

// LintAll runs all linters.
func LintAll() error {
	var errs []error

	if err := Run("Go Format", "go", "fmt", "./..."); err != nil {
		errs = append(errs, err)
	}
	if err := Run("Go Vet", "go", "vet", "./..."); err != nil {
		errs = append(errs, err)
	}
	if err := Run("Golangci-lint", "golangci-lint", "run", "./..."); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning("golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		} else {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}
