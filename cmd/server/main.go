package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"

	"github.com/kayaomerr/ytsummarizer/auth"
	"github.com/kayaomerr/ytsummarizer/bridge"
	"github.com/kayaomerr/ytsummarizer/internal/config"
	"github.com/kayaomerr/ytsummarizer/records"
	"github.com/kayaomerr/ytsummarizer/server"
	"github.com/kayaomerr/ytsummarizer/summarize"
	"github.com/kayaomerr/ytsummarizer/transcript"
	"github.com/kayaomerr/ytsummarizer/youtube"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	srv, db, err := buildServer(c)
	if err != nil {
		return err
	}
	defer db.Close()

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func buildServer(c config.Config) (*server.Server, *sql.DB, error) {
	if err := os.MkdirAll(c.GetDataFolder(), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data folder: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(c.GetDataFolder(), "ytsummarizer.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	recordRepo, err := records.NewSQLiteRepo(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	ytClient := youtube.NewClient()
	exchange, err := auth.NewExchangeService(context.Background(), c, ytClient)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	srv, err := server.New(c, server.Deps{
		Exchange:    exchange,
		Hub:         bridge.NewHub(),
		Videos:      ytClient,
		Transcripts: transcript.NewClient(c.GetSupadataAPIKey()),
		Summarizer: summarize.NewClient(
			c.GetOpenRouterAPIKey(),
			c.GetOpenRouterModel(),
			summarize.WithReferer(c.GetAppURL()),
		),
		Records: recordRepo,
	})
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return srv, db, nil
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
