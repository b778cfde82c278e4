package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/lkesich/maine-geography/pkg/api"
	"github.com/lkesich/maine-geography/pkg/elections"
	"github.com/lkesich/maine-geography/pkg/entities"
	"github.com/lkesich/maine-geography/pkg/gazetteer"
	"github.com/mark3labs/mcp-go/server"
)

type config struct {
	Addr     string `yaml:"addr"`
	Snapshot string `yaml:"snapshot"`
	Cache    string `yaml:"cache"`
	Counties string `yaml:"counties"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	case "build":
		cmdBuild(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: mainegeo <command>

Commands:
  serve   Start the HTTP server
  mcp     Serve the MCP tools on stdio
  build   Build the town database from reference extracts
`)
}

// app holds the loaded gazetteer behind a swappable handler so SIGHUP can
// reload the database without dropping connections.
type app struct {
	logger *slog.Logger
	cfg    config

	mu      sync.RWMutex
	db      *gazetteer.Gazetteer
	handler http.Handler
}

func (a *app) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	h := a.handler
	a.mu.RUnlock()
	h.ServeHTTP(w, r)
}

func (a *app) load() error {
	db, err := loadGazetteer(a.cfg, a.logger)
	if err != nil {
		return err
	}
	parser := elections.NewParser(db, a.logger)

	a.mu.Lock()
	a.db = db
	a.handler = api.NewRouter(db, parser)
	a.mu.Unlock()
	return nil
}

func (a *app) towns() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.db.Len()
}

// loadGazetteer restores the town database, preferring the gob cache over
// the YAML snapshot.
func loadGazetteer(cfg config, logger *slog.Logger) (*gazetteer.Gazetteer, error) {
	counties, err := loadCounties(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Cache != "" {
		if _, err := os.Stat(cfg.Cache); err == nil {
			return gazetteer.LoadGob(cfg.Cache, counties)
		}
		logger.Info("no gob cache, loading snapshot", "cache", cfg.Cache)
	}
	return gazetteer.LoadSnapshot(cfg.Snapshot, counties)
}

func loadCounties(cfg config) (*entities.CountyTable, error) {
	if cfg.Counties == "" {
		return entities.DefaultCounties(), nil
	}
	return entities.LoadCountyTable(cfg.Counties)
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	a := &app{
		logger: logger,
		cfg:    loadConfig(*cfgPath, logger),
	}
	if err := a.load(); err != nil {
		logger.Error("failed to load town database", "error", err)
		os.Exit(1)
	}
	logger.Info("town database loaded", "towns", a.towns())

	srv := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: a,
	}

	// SIGHUP: hot reload the town database.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading town database")
			if err := a.load(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("town database reloaded", "towns", a.towns())
			}
		}
	}()

	go func() {
		logger.Info("mainegeo listening", "addr", a.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := loadConfig(*cfgPath, logger)

	db, err := loadGazetteer(cfg, logger)
	if err != nil {
		logger.Error("failed to load town database", "error", err)
		os.Exit(1)
	}
	parser := elections.NewParser(db, logger)

	srv := server.NewMCPServer("mainegeo", version)
	api.RegisterMCPTools(srv, db, parser)

	logger.Info("mainegeo MCP server on stdio", "towns", db.Len())
	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

const version = "1.0.0"

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:     ":8420",
		Snapshot: "towns.yaml",
		Cache:    "towns.gob",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
