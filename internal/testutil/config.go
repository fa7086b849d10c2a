package testutil

import (
	"github.com/footprint-tools/verbs/internal/config"
	"github.com/footprint-tools/verbs/internal/domain"
)

// MemConfig is a domain.ConfigProvider over rc lines held in memory. Values
// missing from Lines fall back to config.Defaults, as the real file does.
type MemConfig struct {
	Lines []string

	// ReadErr fails every call that reads the lines.
	ReadErr error
	// WriteErr fails every edit after the lines were read.
	WriteErr error
}

func (m *MemConfig) parsed() (map[string]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return config.Parse(m.Lines)
}

func (m *MemConfig) Get(key string) (string, bool) {
	cfg, err := m.parsed()
	if err == nil {
		if v, ok := cfg[key]; ok {
			return v, true
		}
	}
	if fn, ok := config.Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

func (m *MemConfig) GetAll() (map[string]string, error) {
	cfg, err := m.parsed()
	if err != nil {
		return nil, err
	}
	all := make(map[string]string, len(config.Defaults)+len(cfg))
	for key, fn := range config.Defaults {
		all[key] = fn()
	}
	for key, v := range cfg {
		all[key] = v
	}
	return all, nil
}

func (m *MemConfig) Set(key, value string) (bool, error) {
	var updated bool
	err := m.edit(func(lines []string) []string {
		lines, updated = config.Set(lines, key, config.Quote(value))
		return lines
	})
	return updated, err
}

func (m *MemConfig) Unset(key string) (bool, error) {
	var removed bool
	err := m.edit(func(lines []string) []string {
		lines, removed = config.Unset(lines, key)
		return lines
	})
	return removed, err
}

func (m *MemConfig) Reset() (string, error) {
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	m.Lines = config.DefaultLines()
	return "/home/test/.verbsrc", nil
}

func (m *MemConfig) edit(fn func([]string) []string) error {
	if m.ReadErr != nil {
		return m.ReadErr
	}
	lines := fn(append([]string(nil), m.Lines...))
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Lines = lines
	return nil
}

var _ domain.ConfigProvider = (*MemConfig)(nil)
