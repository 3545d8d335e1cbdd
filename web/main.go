package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/df07/go-ar-hittest/pkg/math"
	"github.com/df07/go-ar-hittest/pkg/scene"
	"github.com/df07/go-ar-hittest/pkg/watcher"
	"github.com/df07/go-ar-hittest/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	catalogPath := flag.String("catalog", "", "Object catalog TOML file (built-in catalog if empty)")
	aspect := flag.Float64("aspect", 16.0/9.0, "Screen aspect ratio for tap unprojection")
	flag.Parse()

	catalog := scene.DefaultCatalog()
	if *catalogPath != "" {
		loaded, err := scene.LoadCatalog(*catalogPath)
		if err != nil {
			log.Printf("Error loading catalog: %v", err)
			os.Exit(1)
		}
		catalog = loaded
	}

	sc := scene.NewScene(catalog)
	camera := scene.NewCamera(math.NewVec3(0, 1, 2), float32(*aspect))

	// Reload the catalog when the file changes on disk
	if *catalogPath != "" {
		fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
		if err != nil {
			log.Printf("Error creating catalog watcher: %v", err)
			os.Exit(1)
		}
		defer fw.Close()

		err = fw.Watch(*catalogPath, func(path string) {
			reloaded, err := scene.LoadCatalog(path)
			if err != nil {
				log.Printf("Catalog reload failed, keeping previous: %v", err)
				return
			}
			sc.SetCatalog(reloaded)
			log.Printf("Reloaded catalog from %s (%d kinds)", path, len(reloaded.Entries))
		})
		if err != nil {
			log.Printf("Error watching catalog: %v", err)
			os.Exit(1)
		}
		fw.Start()
	}

	webServer := server.NewServer(*port, sc, camera)

	log.Printf("AR Tap-Hit Test Server")
	log.Printf("Visit http://localhost:%d/api/health to check status", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
