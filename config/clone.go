// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Copy and merge helpers for config maps.

package config

// Clone returns a copy of the config with every section copied.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, value := range cfg {
		if section := asSection(value); section != nil {
			out := make(Section, len(section))
			for key, v := range section {
				out[key] = v
			}
			clone[name] = out
			continue
		}
		clone[name] = value
	}
	return clone
}

// Merge copies every key of src into dst. Sections are merged key by key;
// anything else is replaced.
func Merge(dst, src Config) {
	if dst == nil {
		return
	}
	for name, value := range src {
		in := asSection(value)
		if in == nil {
			dst[name] = value
			continue
		}
		out := dst.Section(name)
		if out == nil {
			out = make(Section, len(in))
			dst[name] = out
		}
		for key, v := range in {
			out[key] = v
		}
	}
}

func asSection(value interface{}) Section {
	switch v := value.(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}
