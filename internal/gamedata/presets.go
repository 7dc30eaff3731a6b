package gamedata

import (
	"errors"
	"fmt"
)

// PresetDef is a named board configuration loaded from JSON.
type PresetDef struct {
	ID      string `json:"id"`      // Unique identifier (e.g., "expert")
	Name    string `json:"name"`    // Display name (e.g., "Expert")
	Rows    int    `json:"rows"`    // Board height
	Columns int    `json:"columns"` // Board width
	Bombs   int    `json:"bombs"`   // Number of bombs
}

// String renders the preset as "Expert 16x30/99".
func (p PresetDef) String() string {
	return fmt.Sprintf("%s %dx%d/%d", p.Name, p.Rows, p.Columns, p.Bombs)
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Default string      `json:"default"`
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads board presets from the embedded presets.json file.
func LoadPresets() (PresetsFile, error) {
	return Load[PresetsFile]("presets.json")
}

// PresetRegistry holds loaded presets and provides lookup by ID.
type PresetRegistry struct {
	presets   map[string]*PresetDef
	all       []PresetDef
	defaultID string
}

// NewPresetRegistry creates a registry from loaded preset definitions.
// An empty or unknown defaultID falls back to the first preset.
func NewPresetRegistry(presets []PresetDef, defaultID string) *PresetRegistry {
	registry := &PresetRegistry{
		presets:   make(map[string]*PresetDef),
		all:       presets,
		defaultID: defaultID,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	if _, ok := registry.presets[defaultID]; !ok && len(presets) > 0 {
		registry.defaultID = presets[0].ID
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	file, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(file.Presets, file.Default), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// Default returns the default preset, or nil for an empty registry.
func (r *PresetRegistry) Default() *PresetDef {
	return r.presets[r.defaultID]
}

// IDs returns preset IDs in file order.
func (r *PresetRegistry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, p := range r.all {
		ids = append(ids, p.ID)
	}
	return ids
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}
