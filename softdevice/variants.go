// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package softdevice

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoVariant        = errors.New("softdevice tag set but no variant selected")
	ErrMultipleVariants = errors.New("more than one softdevice variant selected")
	ErrInvalidManifest  = errors.New("invalid softdevice variant manifest")
)

// VariantInfo describes one SoftDevice binary variant and what its adapter
// unit is expected to produce.
type VariantInfo struct {
	// Name is also the build tag that selects the variant.
	Name    string `yaml:"name"`
	Chip    string `yaml:"chip"`
	Version string `yaml:"version"`
	// Include is the SDK include directory, relative to this package.
	Include string   `yaml:"include"`
	Headers []string `yaml:"headers"`
	// Neutralize lists the qualifiers the adapter unit defines away.
	Neutralize []string `yaml:"neutralize"`
	// Exports lists symbols that must be externally visible in the adapter
	// unit's object file.
	Exports []string `yaml:"exports"`
	// CriticalRegionState is set on the one variant whose adapter unit
	// defines nrf_nvic_state.
	CriticalRegionState bool `yaml:"critical_region_state"`
}

// Manifest is the list of variants the adapter supports.
type Manifest struct {
	Variants []VariantInfo `yaml:"variants"`
}

//go:embed variants.yaml
var defaultManifestYAML []byte

var defaultManifest = sync.OnceValue(func() *Manifest {
	m, err := ParseManifest(defaultManifestYAML)
	if err != nil {
		panic(err)
	}
	return m
})

// DefaultManifest returns the manifest describing the adapter units that
// ship with this package.
func DefaultManifest() *Manifest {
	return defaultManifest()
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses the manifest at path in fs.
func LoadManifest(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m *Manifest) validate() error {
	if len(m.Variants) == 0 {
		return fmt.Errorf("%w: no variants", ErrInvalidManifest)
	}

	seen := make(map[string]bool, len(m.Variants))
	stateOwners := 0
	for i, v := range m.Variants {
		switch {
		case v.Name == "":
			return fmt.Errorf("%w: variant %d has no name", ErrInvalidManifest, i)
		case v.Name == FeatureTag:
			return fmt.Errorf("%w: variant may not be named %q", ErrInvalidManifest, FeatureTag)
		case seen[v.Name]:
			return fmt.Errorf("%w: duplicate variant %q", ErrInvalidManifest, v.Name)
		case v.Include == "":
			return fmt.Errorf("%w: variant %q has no include directory", ErrInvalidManifest, v.Name)
		case len(v.Headers) == 0:
			return fmt.Errorf("%w: variant %q has no headers", ErrInvalidManifest, v.Name)
		}
		seen[v.Name] = true
		if v.CriticalRegionState {
			stateOwners++
		}
	}
	if stateOwners > 1 {
		return fmt.Errorf("%w: %d variants define the critical region state", ErrInvalidManifest, stateOwners)
	}
	return nil
}

// Names returns the variant names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Variants))
	for i, v := range m.Variants {
		names[i] = v.Name
	}
	return names
}

// Lookup returns the variant called name.
func (m *Manifest) Lookup(name string) (VariantInfo, bool) {
	for _, v := range m.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return VariantInfo{}, false
}

// Select applies the build-time selection rule to a set of build tags.
// Without FeatureTag the adapter is disabled and Select returns ok == false
// with a nil error, whatever variant tags are present. With FeatureTag,
// exactly one variant tag must be present.
func (m *Manifest) Select(tags []string) (v VariantInfo, ok bool, err error) {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[strings.TrimSpace(t)] = true
	}
	if !set[FeatureTag] {
		return VariantInfo{}, false, nil
	}

	var picked []VariantInfo
	for _, v := range m.Variants {
		if set[v.Name] {
			picked = append(picked, v)
		}
	}

	switch len(picked) {
	case 0:
		return VariantInfo{}, false, fmt.Errorf("%w (want one of %s)", ErrNoVariant, strings.Join(m.Names(), ", "))
	case 1:
		return picked[0], true, nil
	default:
		names := make([]string, len(picked))
		for i, v := range picked {
			names[i] = v.Name
		}
		return VariantInfo{}, false, fmt.Errorf("%w: %s", ErrMultipleVariants, strings.Join(names, ", "))
	}
}

// Variants returns the variants in the default manifest.
func Variants() []VariantInfo {
	return DefaultManifest().Variants
}

// LookupVariant finds name in the default manifest.
func LookupVariant(name string) (VariantInfo, bool) {
	return DefaultManifest().Lookup(name)
}

// SelectVariant applies [Manifest.Select] with the default manifest.
func SelectVariant(tags []string) (VariantInfo, bool, error) {
	return DefaultManifest().Select(tags)
}
