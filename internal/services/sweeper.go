package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// Sweeper deletes rendered files older than a TTL from the output directory.
type Sweeper interface {
	Start(ctx context.Context)
	Stop()
	Sweep() (int, error)
}

type sweeper struct {
	storage  StorageService
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewSweeper(storage StorageService, ttl, interval time.Duration) Sweeper {
	return &sweeper{
		storage:  storage,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Start implements Sweeper. A zero TTL or interval leaves files in place forever.
func (s *sweeper) Start(ctx context.Context) {
	if s.ttl <= 0 || s.interval <= 0 {
		log.Println("⚠️  Output sweeper disabled, rendered files are kept indefinitely")
		return
	}

	s.wg.Add(1)
	go s.run(ctx)

	log.Printf("🧹 Output sweeper started (ttl=%s, interval=%s)\n", s.ttl, s.interval)
}

// Stop implements Sweeper.
func (s *sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
}

// Sweep implements Sweeper.
func (s *sweeper) Sweep() (int, error) {
	files, err := s.storage.ListFiles()
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for _, file := range files {
		if !file.ModTime.Before(cutoff) {
			continue
		}
		if err := s.storage.DeleteFile(file.Name); err != nil {
			log.Printf("⚠️  Failed to remove expired file %s: %v\n", file.Name, err)
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *sweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			log.Println("🧹 Output sweeper stopped")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.Sweep()
			if err != nil {
				log.Printf("⚠️  Output sweep failed: %v\n", err)
				continue
			}
			if removed > 0 {
				log.Printf("🧹 Removed %d expired files\n", removed)
			}
		}
	}
}
