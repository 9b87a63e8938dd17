package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"carti-server/internal/config"
	"carti-server/internal/jwt"
	"carti-server/internal/mux"
	"carti-server/pkg/db"
	"carti-server/pkg/game"
	"carti-server/pkg/model"
	"carti-server/pkg/room"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	// fail fast
	jwt.LoadKeys()

	// run the db migrations
	db.Migrate()

	m := mux.NewMux(Version, room.NewMemoryStore(), gameOptions())
	m.UseRecorder(model.Recorder{})

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func gameOptions() game.Options {
	options := game.DefaultOptions()

	cfg := config.Instance().Game
	if cfg.TrickDelay > 0 {
		options.TrickDelay = time.Duration(cfg.TrickDelay) * time.Millisecond
	}

	if cfg.BotDelay > 0 {
		options.BotDelay = time.Duration(cfg.BotDelay) * time.Millisecond
	}

	if cfg.BaseReviewDelay > 0 {
		options.BaseReviewDelay = time.Duration(cfg.BaseReviewDelay) * time.Millisecond
	}

	return options
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
