//
// Tencent is pleased to support the open source community by making fitagent available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// fitagent is licensed under the Apache License Version 2.0.
//
//

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// envAPIKeyVar selects the environment source when present.
const envAPIKeyVar = "FITAGENT_API_KEY"

// envPrefix is prepended to SECTION_KEY when resolving environment keys,
// e.g. (api, base_url) -> FITAGENT_API_BASE_URL.
const envPrefix = "FITAGENT_"

func detectSource(path string) (Source, error) {
	if os.Getenv(envAPIKeyVar) != "" {
		return envSource{}, nil
	}
	return loadFileSource(path)
}

// fileSource reads configuration from a YAML file with two-level structure:
//
//	api:
//	  api_key: "..."
//	  model: "llama3-8b-8192"
//	agents:
//	  temperature: 0.7
type fileSource struct {
	path string
	data map[string]map[string]string
}

func loadFileSource(path string) (Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var parsed map[string]map[string]any
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	data := make(map[string]map[string]string, len(parsed))
	for section, kv := range parsed {
		data[section] = make(map[string]string, len(kv))
		for key, value := range kv {
			data[section][key] = fmt.Sprint(value)
		}
	}
	return fileSource{path: path, data: data}, nil
}

func (s fileSource) Get(section, key string) (string, bool) {
	kv, ok := s.data[section]
	if !ok {
		return "", false
	}
	v, ok := kv[key]
	return v, ok
}

func (s fileSource) Name() string {
	return "file:" + s.path
}

// envSource resolves (section, key) lookups against environment variables.
// The api_key key maps directly to FITAGENT_API_KEY; everything else uses
// the FITAGENT_<SECTION>_<KEY> convention.
type envSource struct{}

func (envSource) Get(section, key string) (string, bool) {
	if section == sectionAPI && key == keyAPIKey {
		v := os.Getenv(envAPIKeyVar)
		return v, v != ""
	}
	name := envPrefix + strings.ToUpper(section) + "_" + strings.ToUpper(key)
	v := os.Getenv(name)
	return v, v != ""
}

func (envSource) Name() string {
	return "env"
}
