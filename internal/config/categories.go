package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const categoriesFile = "categories.json"

// DefaultCategories are always valid and cannot be removed.
var DefaultCategories = []string{"feature", "bug", "refactor", "docs", "meeting"}

var ErrEmptyCategory = errors.New("category name cannot be empty")

// Categories is the explicitly-owned set of valid category labels: the
// fixed defaults plus user-defined ones persisted in categories.json.
// Callers hold one instance for the process lifetime; tests construct
// isolated instances against a temp directory.
type Categories struct {
	path   string
	custom []string
}

type categoriesDocument struct {
	Custom []string `json:"custom_categories"`
}

// LoadCategories reads dir/categories.json. A missing or unreadable file
// yields the defaults only.
func LoadCategories(dir string) *Categories {
	c := &Categories{path: filepath.Join(dir, categoriesFile)}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return c
	}
	var doc categoriesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return c
	}
	c.custom = doc.Custom
	return c
}

// All returns defaults followed by custom categories.
func (c *Categories) All() []string {
	out := make([]string, 0, len(DefaultCategories)+len(c.custom))
	out = append(out, DefaultCategories...)
	out = append(out, c.custom...)
	return out
}

// Valid reports whether name is a known category.
func (c *Categories) Valid(name string) bool {
	for _, cat := range c.All() {
		if cat == name {
			return true
		}
	}
	return false
}

// Add registers a custom category and persists the set. Returns false when
// the name already exists.
func (c *Categories) Add(name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, ErrEmptyCategory
	}
	if c.Valid(name) {
		return false, nil
	}

	c.custom = append(c.custom, name)
	if err := c.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a custom category and persists the set. Defaults cannot be
// removed; unknown names report false.
func (c *Categories) Remove(name string) (bool, error) {
	for _, d := range DefaultCategories {
		if d == name {
			return false, nil
		}
	}

	idx := -1
	for i, cat := range c.custom {
		if cat == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	c.custom = append(c.custom[:idx], c.custom[idx+1:]...)
	if err := c.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Reset drops all custom categories and removes the file.
func (c *Categories) Reset() error {
	c.custom = nil
	err := os.Remove(c.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing categories file: %w", err)
	}
	return nil
}

func (c *Categories) save() error {
	data, err := json.MarshalIndent(categoriesDocument{Custom: c.custom}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), categoriesFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing categories: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing categories file: %w", err)
	}
	return nil
}
