// Config loading for the qarchitect CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/form-foundry/qarchitect/internal/paths"
	"github.com/form-foundry/qarchitect/pkg/floorplan"
	"github.com/form-foundry/qarchitect/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyShots      = "shots"
	cfgKeyRule       = "rule"
	cfgKeyIterations = "iterations"
)

// Config defaults.
var (
	defaultBackend    = types.BackendSQLite
	defaultShots      = 1000
	defaultRule       = floorplan.ExactlyOnePair{}.Name()
	defaultIterations = []int{1, 2, 3}
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# qarchitect CLI configuration

# Run-history backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Default shot count per run
shots: 1000

# Default adjacency rule
rule: exactly-one-pair

# Default iteration counts for the sweep command
iterations: [1, 2, 3]
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDirFlag string) (*viper.Viper, error) {
	configDir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyShots, defaultShots)
	v.SetDefault(cfgKeyRule, defaultRule)
	v.SetDefault(cfgKeyIterations, defaultIterations)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// A missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolveDataDir applies the flag > config.yaml > env > default chain.
func resolveDataDir(cfg *viper.Viper) (string, error) {
	return paths.ResolveDataDir(dataDirFlag, cfg.GetString(cfgKeyDataDir))
}

// resolveRule maps a rule name from flag or config to its Rule.
func resolveRule(name string) (floorplan.Rule, error) {
	rule, ok := floorplan.Rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q (known: %s)", name, knownRuleNames())
	}
	return rule, nil
}

func knownRuleNames() string {
	names := make([]string, 0, len(floorplan.Rules))
	for name := range floorplan.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
