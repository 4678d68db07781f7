// Package actions holds command actions shared by the CLI
package actions

import (
	"fmt"
	"io"

	"github.com/devinsights/benchcompare/internal/config"
)

// ShowConfig displays the effective configuration
func ShowConfig(w io.Writer, cfg *config.Config) error {
	if _, err := fmt.Fprintln(w, cfg.String()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
