//go:build !wasm

package main

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gobuffalo/envy"
	"github.com/sirupsen/logrus"
)

func main() {
	// Define flags
	publicDir := flag.String("public-dir", "", "Directory containing static files")
	port := flag.String("port", "", "Port to listen on")
	flag.Parse()

	// Priority: flag > env var > default
	if *port == "" {
		*port = envy.Get("PORT", "4430")
	}
	if *publicDir == "" {
		*publicDir = envy.Get("PUBLIC_DIR", "public")
	}

	log := logrus.New()

	absPublicDir, err := filepath.Abs(*publicDir)
	if err != nil {
		log.Fatalf("Error resolving public directory path: %v", err)
	}
	if _, err := os.Stat(absPublicDir); os.IsNotExist(err) {
		log.Fatalf("Static files directory does not exist: %s", absPublicDir)
	}

	log.Infof("Serving static files from: %s", absPublicDir)

	server := &http.Server{
		Addr:    ":" + *port,
		Handler: newMux(absPublicDir, log),
	}

	log.Infof("Starting server on port %s", *port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
