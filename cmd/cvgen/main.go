// Package main provides the entry point for the cvgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "Generate German CVs and cover letters from YAML data",
	Long:  "cvgen merges a folder of independently maintained YAML documents into one CV model, renders it as LaTeX and optionally compiles it to PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
