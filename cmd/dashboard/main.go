package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/praneethkukunuru/recruitment-dashboard/internal/config"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/server"
	"github.com/praneethkukunuru/recruitment-dashboard/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (a port set in config.toml wins)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Recruitment & Finance Dashboard")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// First run: write an editable config.toml next to the executable.
	if err == nil && !info.FileExists {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			log.Printf("Could not write default config.toml: %v", err)
		}
	}

	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if dir, err := config.EnsureDataDir(cfg); err != nil {
		log.Printf("Failed to create data directory: %v", err)
	} else {
		fmt.Printf("Data directory: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Starting server on port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if cfg.Server.DevMode {
		fmt.Printf("Development mode: open %s\n", url)
	} else if cfg.Server.OpenBrowser {
		fmt.Printf("Opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Could not open a browser, visit %s\n", url)
		}
	} else {
		fmt.Printf("Dashboard running at %s\n", url)
	}

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	if err := srv.Close(); err != nil {
		log.Printf("Close failed: %v", err)
	}
}
