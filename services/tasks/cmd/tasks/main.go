package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "tasks",
		Short:         "In-memory task REST service",
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	addServeFlags(rootCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP listener",
		RunE:  runServe,
	}
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
