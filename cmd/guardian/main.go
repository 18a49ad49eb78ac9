package main

import (
	"fmt"
	"os"

	"github.com/brunogum/content-guardian/internal/cli"
	"github.com/brunogum/content-guardian/internal/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guardian",
	Short: "LLM-backed editorial review workflows",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.GetLogger().Debugf("No .env file loaded: %v", err)
	}
	cli.SetupCLI(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
