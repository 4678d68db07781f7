// Package main is the entry point for the benchcompare application
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/devinsights/benchcompare/cmd"
	"github.com/joho/godotenv"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	// Load the env file before cobra parses flags so config defaults see it
	if err := loadEnvFile(parseEnvFlag(os.Args)); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
		os.Exit(1)
	}

	cmd.Execute()
}

// parseEnvFlag extracts the --env value from the command line
func parseEnvFlag(args []string) string {
	for i, arg := range args {
		if arg == envFlag && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, envFlagEqual) {
			return arg[len(envFlagEqual):]
		}
	}

	return ""
}

// loadEnvFile loads the specified environment file
func loadEnvFile(file string) error {
	if file == "" {
		file = ".env"
	}

	if err := godotenv.Load(file); err != nil {
		// If it's the default .env file and it doesn't exist, that's okay
		if file == ".env" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}
