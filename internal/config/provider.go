package config

import (
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/paths"
)

// Provider is the rc file seen through domain.ConfigProvider. Every edit is a
// locked read-modify-write.
type Provider struct {
	lock func(func() error) error
}

// NewProvider returns a provider over ~/.verbsrc.
func NewProvider() *Provider {
	return &Provider{lock: WithLock}
}

func (p *Provider) Get(key string) (string, bool)      { return Get(key) }
func (p *Provider) GetAll() (map[string]string, error) { return GetAll() }

// Set quotes value when needed and keeps any inline comment on the line.
func (p *Provider) Set(key, value string) (bool, error) {
	var updated bool
	err := p.edit(func(lines []string) []string {
		lines, updated = Set(lines, key, Quote(value))
		return lines
	})
	return updated, err
}

// Unset leaves the file untouched when key has no line.
func (p *Provider) Unset(key string) (bool, error) {
	var removed bool
	err := p.edit(func(lines []string) []string {
		lines, removed = Unset(lines, key)
		return lines
	})
	return removed, err
}

func (p *Provider) Reset() (string, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return "", err
	}
	err = p.lock(func() error {
		return WriteLines(DefaultLines())
	})
	return path, err
}

func (p *Provider) edit(fn func([]string) []string) error {
	return p.lock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		return WriteLines(fn(lines))
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
