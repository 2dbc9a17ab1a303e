// Package main is the entry point for the subspecies CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "subspecies",
	Short: "WFRP4e More Subspecies data tooling",
	Long:  `Generates hashed subspecies dataset artifacts from raw sources and previews how enabled datasets merge into a host configuration.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
}
