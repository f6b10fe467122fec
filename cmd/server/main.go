package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/go_header_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_header_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_header_similarity/internal/warmup"
	"github.com/baditaflorin/go_header_similarity/pkg/catalog"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	catalogFile := flag.String("catalog", "", "YAML catalog of column kinds (empty = built-in insurance catalog)")
	workers := flag.Int("workers", runtime.NumCPU(), "Workers per header assessment request")
	flag.Parse()

	// Set up logger
	lg, err := createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Close()

	lg.Info("Starting header similarity HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
		"catalog", *catalogFile,
	)

	cat, err := loadCatalog(*catalogFile)
	if err != nil {
		lg.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}
	lg.Info("Catalog loaded", "kinds", cat.Names())

	if *warmUp {
		warmUpCatalog(lg, cat)
	}

	srv := newServer(cat, logger.FromExisting(lg), *workers)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               srv.requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lg.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			lg.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	lg.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		lg.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	lg.Info("Server stopped")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

// warmUpCatalog exercises every kind and the stock normalizers once before
// the listener opens.
func warmUpCatalog(lg l.Logger, cat *catalog.Catalog) {
	manager := warmup.NewManager(logger.FromExisting(lg), warmup.DefaultWarmupConfig())
	for _, kind := range cat.Kinds {
		manager.RegisterKind(kind)
	}

	factory := normalizer.NewFactory()
	for _, t := range []normalizer.Type{normalizer.DefaultType, normalizer.AlphaReducedType, normalizer.DigitSubstitutedType} {
		manager.RegisterNormalizer(factory.Create(t))
	}

	manager.WarmUp(context.Background())
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	// Create a logger factory
	factory := l.NewStandardFactory()

	// Configure the logger
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	// Create the logger
	lg, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return lg, nil
}
