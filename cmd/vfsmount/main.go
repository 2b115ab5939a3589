// Command vfsmount mounts one desktop's file tree read-only, using the same
// configuration and storage backend as the server. It never writes to the
// backend and refuses desktops that have no stored file tree.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"serwer-pulpitu/internal/backend"
	"serwer-pulpitu/internal/config"
	"serwer-pulpitu/internal/desktop"
	"serwer-pulpitu/internal/fusefs"
	"serwer-pulpitu/internal/kv"
)

func main() {
	mountPoint := flag.String("mount", "", "Mount point for the desktop file tree")
	desktopID := flag.String("desktop", "", "Desktop to mount")
	refresh := flag.Duration("refresh", 5*time.Second, "How often to re-read the tree from storage (0 disables)")
	flag.Parse()

	if *mountPoint == "" || *desktopID == "" {
		log.Println("ERROR: -mount and -desktop are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Nie można otworzyć magazynu stanu: %v", err)
	}
	defer closeStore()

	files, err := desktop.OpenFiles(ctx, store, *desktopID)
	if errors.Is(err, kv.ErrNotFound) {
		log.Fatalf("Pulpit %s nie istnieje", *desktopID)
	}
	if err != nil {
		log.Fatalf("Nie można otworzyć pulpitu %s: %v", *desktopID, err)
	}

	if *refresh > 0 {
		go func() {
			ticker := time.NewTicker(*refresh)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := files.Reload(ctx); err != nil {
						log.Printf("WARN: Failed to reload desktop %s: %v", *desktopID, err)
					}
				}
			}
		}()
	}

	cleanMount := filepath.Clean(*mountPoint)
	log.Printf("Mounting desktop %s at %s (read-only)", *desktopID, cleanMount)
	if err := fusefs.Mount(ctx, cleanMount, fusefs.New(files)); err != nil {
		log.Fatalf("Mount failed: %v", err)
	}
	log.Println("Clean shutdown complete")
}
