package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "monetization-engine",
	Short: "A CLI for managing the monetization strategy engine services",
	Long:  `Monetization Engine analyzes business data against market trends and generates confidence-scored monetization strategies...`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
