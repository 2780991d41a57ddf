package dataset

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/agenthands/shortlist/internal/config"
	"github.com/agenthands/shortlist/internal/logging"
)

// Source loads the configured dataset once and serves it from memory until
// Reload is called.
type Source struct {
	cfg    config.DatasetConfig
	logger *log.Logger

	mu    sync.RWMutex
	table *Table
	names []string
}

func NewSource(cfg config.DatasetConfig, logger *log.Logger) *Source {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Source{cfg: cfg, logger: logger}
}

func (s *Source) Table() (*Table, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, nil
}

// Names returns a copy of the customer names in file order.
func (s *Source) Names() ([]string, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.names...), nil
}

// Reload drops the cached table and reads the file again.
func (s *Source) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Source) ensure() error {
	s.mu.RLock()
	loaded := s.table != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table != nil {
		return nil
	}
	return s.load()
}

func (s *Source) load() error {
	table, err := Load(s.cfg.Path, s.cfg)
	if err != nil {
		return fmt.Errorf("failed to load dataset %s: %w", s.cfg.Path, err)
	}
	names, err := table.Names(s.cfg)
	if err != nil {
		return fmt.Errorf("failed to read customer names: %w", err)
	}

	s.table = table
	s.names = names
	s.logger.Info("dataset loaded", "path", s.cfg.Path, "rows", len(table.Rows), "names", len(names))
	return nil
}
