package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file. PII
// field lists are JSON arrays here rather than the "|"-joined strings used
// by the env syntax.
type StructuredJSONConfig struct {
	App struct {
		LogFile           string `json:"log_file"`
		RequireEncryption bool   `json:"require_encryption"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			SaltFile string `json:"salt_file"`
		} `json:"files,omitempty"`

		Bolt struct {
			Path string `json:"path"`
		} `json:"bolt,omitempty"`

		Keyring struct {
			Service string `json:"service"`
			User    string `json:"user"`
		} `json:"keyring,omitempty"`
	} `json:"storage,omitempty"`

	Records struct {
		PIIFields map[string][]string `json:"pii_fields"`
	} `json:"records,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var piiFields map[string]string
	if len(jsonCfg.Records.PIIFields) > 0 {
		piiFields = make(map[string]string, len(jsonCfg.Records.PIIFields))
		for recordType, fields := range jsonCfg.Records.PIIFields {
			piiFields[recordType] = joinFields(fields)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:           jsonCfg.App.LogFile,
			RequireEncryption: jsonCfg.App.RequireEncryption,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				SaltFile: jsonCfg.Storage.Files.SaltFile,
			},
			Bolt: Bolt{
				Path: jsonCfg.Storage.Bolt.Path,
			},
			Keyring: Keyring{
				Service: jsonCfg.Storage.Keyring.Service,
				User:    jsonCfg.Storage.Keyring.User,
			},
		},
		Records: Records{
			PIIFields: piiFields,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
