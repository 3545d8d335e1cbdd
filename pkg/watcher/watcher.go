package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches files for changes and triggers callbacks,
// debouncing rapid successive writes from editors
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// NewFileWatcher creates a new file watcher with the given debounce
// interval
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   watcher,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers a callback for changes to the given file
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", file, err)
	}
	if err := fw.watcher.Add(absPath); err != nil {
		return fmt.Errorf("watch %s: %w", absPath, err)
	}

	fw.callbacks[absPath] = callback
	return nil
}

// Start begins delivering file change events in a background goroutine
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				// Only writes and creates matter; renames from
				// atomic saves show up as creates
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.handleChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Watcher error: %v", err)
			}
		}
	}()
}

// handleChange schedules the debounced callback for a changed file
func (fw *FileWatcher) handleChange(file string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[file]
	if !exists {
		return
	}

	if timer, exists := fw.timers[file]; exists {
		timer.Stop()
	}
	fw.timers[file] = time.AfterFunc(fw.debounce, func() {
		callback(file)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
