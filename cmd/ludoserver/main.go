// Command ludoserver runs the Ludo REST/WebSocket API server.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/yourusername/ludoengine/pkg/api"
)

const version = "0.1.0"

func main() {
	// .env is optional; environment variables win over defaults,
	// flags win over both.
	godotenv.Load()

	host := flag.String("host", envString("HOST", "localhost"), "Host to bind to (use 0.0.0.0 for all interfaces)")
	port := flag.Int("port", envInt("PORT", 8080), "Port to listen on")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	debug := flag.Bool("debug", false, "Enable debug logging")
	pretty := flag.Bool("pretty", false, "Human-readable log output")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("Ludo API Server v%s\n", version)
		os.Exit(0)
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	var logger zerolog.Logger
	if *pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}

	config := api.ServerConfig{
		Host:         *host,
		Port:         *port,
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	server := api.NewServer(config, version, logger)

	logger.Info().Str("version", version).Msg("ludo api server starting")
	if err := server.ListenAndServeWithGracefulShutdown(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
