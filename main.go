package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"inkwell/app/config"
	"inkwell/app/routes"

	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog API server.

Configuration (environment):
  INKWELL_ADDR                   Listen address (default :8080).
  INKWELL_DB_PATH                Badger store directory (default data/badger).
  INKWELL_JWT_SECRET             Shared secret for bearer tokens.
  INKWELL_ADMIN_USER             Login username (default admin).
  INKWELL_ADMIN_PASSWORD_HASH    bcrypt hash of the login password.
  INKWELL_TOKEN_TTL              Token lifetime (default 24h).
`
	fmt.Println(helpText)
}

func serve() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		slog.Warn("INKWELL_JWT_SECRET is not set; post creation will reject every token")
	}

	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		slog.Error("failed to open badger db", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	handler := routes.SetupRoutes(db, cfg)

	slog.Info("starting blog API server", "addr", cfg.Addr, "db", cfg.DBPath)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
