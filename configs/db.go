package configs

import (
	"log"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
)

// Store owns the single database handle for the process. It is constructed
// once in main and injected into everything that needs it; Close is called
// exactly once at shutdown.
type Store struct {
	mu     sync.Mutex
	db     *gorm.DB
	source string
}

func OpenStore(cfg *Config) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "open database", err)
	}
	return &Store{db: db, source: cfg.DBSource}, nil
}

// DB hands out the shared handle, verifying it is still alive first.
// A closed handle gets one reopen attempt; anything past that is the
// caller's problem.
func (s *Store) DB() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sqlDB, err := s.db.DB(); err == nil {
		if err := sqlDB.Ping(); err == nil {
			return s.db, nil
		}
	}

	log.Println("database handle is closed, reopening", s.source)
	db, err := gorm.Open(sqlite.Open(s.source), &gorm.Config{})
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "reopen database", err)
	}
	s.db = db
	return s.db, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
