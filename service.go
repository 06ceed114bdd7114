package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"ewintr.nl/showreel/aggregator"
	"ewintr.nl/showreel/fetcher"
	"ewintr.nl/showreel/handler"
	"ewintr.nl/showreel/model"
	"ewintr.nl/showreel/poster"
	"ewintr.nl/showreel/storage"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	godotenv.Load()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr))

	token := requireParam("DISCORD_BOT_TOKEN", logger)
	feeds := map[model.Topic]string{
		model.TopicDesign:      requireParam("DESIGN_CHANNEL_ID", logger),
		model.TopicPhotography: requireParam("PHOTOGRAPHY_CHANNEL_ID", logger),
	}

	var ytClient *youtube.Service
	if apiKey := getParam("YOUTUBE_API_KEY", ""); apiKey != "" {
		var err error
		ytClient, err = youtube.NewService(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			logger.Error("unable to create youtube service", err)
			os.Exit(1)
		}
	} else {
		logger.Info("youtube api key not set, video retrieval disabled")
	}
	yt := fetcher.NewYoutube(ytClient)

	var ledger storage.Ledger = storage.NewMemoryLedger()
	if host := getParam("POSTGRES_HOST", ""); host != "" {
		postgres, err := storage.NewPostgres(storage.PostgresInfo{
			Host:     host,
			Port:     getParam("POSTGRES_PORT", "5432"),
			User:     getParam("POSTGRES_USER", "showreel"),
			Password: getParam("POSTGRES_PASSWORD", "showreel"),
			Database: getParam("POSTGRES_DB", "showreel"),
		})
		if err != nil {
			logger.Error("unable to connect to postgres", err)
			os.Exit(1)
		}
		ledger = storage.NewPostgresLedger(postgres, logger)
		logger.Info("using postgres backed ledger")
	}

	discord, err := poster.NewDiscord(token)
	if err != nil {
		logger.Error("unable to create discord session", err)
		os.Exit(1)
	}

	pace, err := time.ParseDuration(getParam("POST_PACE", "2s"))
	if err != nil {
		logger.Error("unable to parse post pace", err)
		os.Exit(1)
	}
	interval, err := time.ParseDuration(getParam("FETCH_INTERVAL", "6h"))
	if err != nil {
		logger.Error("unable to parse fetch interval", err)
		os.Exit(1)
	}

	announcements := storage.NewAnnouncementLog(100)
	pst := poster.NewPoster(discord, ledger, announcements, pace, logger)
	aggr := aggregator.NewAggregator(yt, pst, discord, ledger, feeds, fetcher.FeaturedChannels, logger)

	go func() {
		run := func() {
			if err := aggr.Run(); err != nil {
				logger.Error("aggregation pass failed", err)
			}
		}

		// run immediately on startup, then on a fixed cadence
		run()
		ticker := time.NewTicker(interval)
		for range ticker.C {
			run()
		}
	}()
	logger.Info("aggregation service started", slog.String("interval", interval.String()))

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil {
		logger.Error("invalid port", err)
		os.Exit(1)
	}
	go http.ListenAndServe(fmt.Sprintf(":%d", port), handler.NewServer(announcements, logger))
	logger.Info("http server started")

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	logger.Info("service stopped")
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}

func requireParam(param string, logger *slog.Logger) string {
	val, ok := os.LookupEnv(param)
	if !ok || val == "" {
		logger.Error("missing required configuration", fmt.Errorf("environment variable %s is not set", param))
		os.Exit(1)
	}
	return val
}
