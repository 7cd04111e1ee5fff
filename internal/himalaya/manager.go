package himalaya

import (
	"log/slog"
	"path/filepath"
	"sync"
)

// Warning records a table whose source could not be loaded. The affected
// table is still served as an empty, schema-complete table.
type Warning struct {
	Table string
	Err   error
}

// Manager owns the per-table load cache. Tables are loaded lazily, at most
// once per generation; Reset starts a new generation. Loads never fail past
// the Manager's boundary: an unreadable or invalid source degrades to an
// empty schema-complete table plus a Warning.
type Manager struct {
	config Config
	logger *slog.Logger

	mu       sync.Mutex
	tables   map[string]Table
	warnings []Warning
}

// NewManager creates a Manager. Construction does not touch the filesystem;
// the first access to each table triggers its load.
func NewManager(config Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		config: config,
		logger: logger,
		tables: make(map[string]Table),
	}
}

// Load returns the named table, loading and caching it on first use.
// Concurrent first loads converge on a single computation; later callers
// receive the cached table.
func (m *Manager) Load(name string) Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(name)
}

func (m *Manager) loadLocked(name string) Table {
	if t, ok := m.tables[name]; ok {
		return t
	}

	path := filepath.Join(m.config.DataPath, name+".csv")
	t, err := loadTable(path, name)
	if err != nil {
		m.logger.Warn("table unavailable, serving empty table",
			slog.String("table", name),
			slog.String("error", err.Error()))
		m.warnings = append(m.warnings, Warning{Table: name, Err: err})
		t = emptyTable(name)
	} else if m.config.Verbose {
		m.logger.Info("table loaded",
			slog.String("table", name),
			slog.Int("rows", len(t.Rows)))
	}

	m.tables[name] = t
	return t
}

// LoadAll forces all four tables to load and returns the warnings collected
// so far. Intended for the startup path.
func (m *Manager) LoadAll() []Warning {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, name := range TableNames() {
		m.loadLocked(name)
	}
	return append([]Warning(nil), m.warnings...)
}

// Warnings returns the load warnings accumulated in the current generation.
func (m *Manager) Warnings() []Warning {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Warning(nil), m.warnings...)
}

// Reset drops all cached tables and warnings. The next access to each table
// reloads it from disk. This is the only refresh mechanism besides a process
// restart.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = make(map[string]Table)
	m.warnings = nil
}

// Tables returns all four loaded tables as a join-ready bundle.
func (m *Manager) Tables() Tables {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Tables{
		Expeditions: m.loadLocked(TableExpeditions),
		Members:     m.loadLocked(TableMembers),
		Peaks:       m.loadLocked(TablePeaks),
		References:  m.loadLocked(TableReferences),
	}
}

func (m *Manager) Expeditions() Table { return m.Load(TableExpeditions) }
func (m *Manager) Members() Table     { return m.Load(TableMembers) }
func (m *Manager) Peaks() Table       { return m.Load(TablePeaks) }
func (m *Manager) References() Table  { return m.Load(TableReferences) }
