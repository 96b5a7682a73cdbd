package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "petcare",
	Short: "Pet shop scheduling and capacity service",
	Long:  "Books grooming slots, daycare enrollments and hotel stays against shared capacity, and exposes the admin operations behind a role check.",
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, rebuildCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
