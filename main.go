package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/mwhitby/ballotbox/ballotio"
	"github.com/mwhitby/ballotbox/cliparse"
	"github.com/mwhitby/ballotbox/db"
	"github.com/mwhitby/ballotbox/middleware"
	"github.com/mwhitby/ballotbox/router"
	"github.com/mwhitby/ballotbox/tally"
)

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Serve {
		serve(cfg)
		return
	}

	if err := runBatch(cfg); err != nil {
		slog.Error("Tally failed", "error", err)
		os.Exit(1)
	}
}

// runBatch is the one-shot pipeline: parse both inputs completely, tally,
// then write the result document. A parse error in either input aborts
// before the output file is even created.
func runBatch(cfg cliparse.Config) error {
	contestFile, err := os.Open(cfg.ContestPath)
	if err != nil {
		return err
	}
	defer contestFile.Close()

	contest, err := ballotio.ReadContest(contestFile)
	if err != nil {
		return err
	}

	ballotsFile, err := os.Open(cfg.BallotsPath)
	if err != nil {
		return err
	}
	defer ballotsFile.Close()

	ballots, err := ballotio.ReadBallots(ballotsFile)
	if err != nil {
		return err
	}

	result := tally.Count(contest, ballots)

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := ballotio.WriteResult(out, result); err != nil {
		return err
	}

	slog.Info("Tallying completed",
		"contest", contest.ID,
		"ballots_read", humanize.Comma(int64(len(ballots))),
		"votes_counted", humanize.Comma(int64(result.TotalVotes)),
		"output", cfg.OutputPath,
	)
	return nil
}

func serve(cfg cliparse.Config) {
	// Connect to the configured database
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
