package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"spadev/internal/server"
	"spadev/internal/shared"
)

var (
	flagConfig  string
	flagAddr    string
	flagRoot    string
	flagMinimal bool
)

var rootCmd = &cobra.Command{
	Use:          "spadev",
	Short:        "spadev serves the Perfect SPA demo with fallback routing",
	SilenceUsage: true,
	Run:          runServe, // bare invocation serves
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server",
	Run:   runServe,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective config",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		out, _ := json.MarshalIndent(cfg, "", "  ")
		fmt.Println(string(out))
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default ./spadev.yml)")
	pf.StringVar(&flagAddr, "addr", "", "listen address (overrides config)")
	pf.StringVar(&flagRoot, "root", "", "serving root (overrides config)")
	pf.BoolVar(&flagMinimal, "minimal", false, "plain static preset: no extra headers, no fake endpoints, / rewritten to the entry file")
	rootCmd.AddCommand(serveCmd, configCmd)
}

func loadConfig() (*shared.Config, error) {
	// .env is optional locally; real env still wins
	_ = godotenv.Load()

	path := flagConfig
	required := path != ""
	if path == "" {
		path = os.Getenv("SPADEV_CONFIG")
		required = path != ""
	}
	if path == "" {
		path = "./spadev.yml"
	}

	cfg, err := shared.Load(path, required)
	if err != nil {
		return nil, err
	}
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if flagRoot != "" {
		cfg.Root = flagRoot
	}
	if flagMinimal {
		cfg.ApplyMinimal()
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	log.Fatal(srv.ListenAndServe())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
