package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"algoviz/pkg/api"
	"algoviz/pkg/config"
	"algoviz/pkg/dataset"
	"algoviz/pkg/engine"
	"algoviz/pkg/network"
	"algoviz/pkg/store"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Server] Failed to load config: %v", err)
	}

	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		log.Fatalf("[Server] Failed to create storage dir: %v", err)
	}
	archive, err := store.Open(filepath.Join(cfg.Storage.Path, "results.db"))
	if err != nil {
		log.Fatalf("[Server] Failed to open result archive: %v", err)
	}
	defer archive.Close()

	reg := dataset.NewRegistry()
	eng := engine.New(reg, archive, cfg.Limits.MaxVizElements)

	tcpServer := network.NewTCPServer(eng)
	go func() {
		if err := tcpServer.Start(cfg.Server.TCPAddr); err != nil {
			log.Fatalf("[Server] TCP server failed: %v", err)
		}
	}()

	httpServer := api.NewServer(eng, archive, cfg)
	httpServer.Start(cfg.Server.Addr)
}
