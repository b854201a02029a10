package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/pkg/paths"
	"github.com/grovetools/stroke/schema"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Format names accepted by LoadFromBytes.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// configNames lists project config file names in lookup order.
var configNames = []string{
	"stroke.yml",
	"stroke.yaml",
	".stroke.yml",
	".stroke.yaml",
	"stroke.toml",
}

// overrideNames lists local override files merged over the project config.
var overrideNames = []string{
	"stroke.override.yml",
	"stroke.override.yaml",
}

// Load reads and parses a stroke configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, formatFor(path))
	if err != nil {
		if se, ok := errors.As(err); ok {
			return nil, se.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadDefault finds and loads the configuration with hierarchical merging:
// 1. Global config (~/.config/stroke/stroke.yml) - base layer
// 2. Project config (stroke.yml) - overrides global
// 3. Local override (stroke.override.yml) - overrides all
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	var finalConfig *Config

	// 1. Global config is optional and only used as a base under a project file.
	globalPath := getXDGConfigPath()
	if globalPath != "" && globalPath != projectPath {
		if globalConfig, err := readRaw(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			finalConfig = globalConfig
		} else if !os.IsNotExist(err) {
			logger.WithError(err).Warn("Failed to load global configuration, continuing without it")
		}
	}

	// 2. Project config is required.
	logger.WithField("path", projectPath).Debug("Loading project configuration")
	projectConfig, err := readRaw(projectPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse project config").
			WithDetail("path", projectPath)
	}

	if finalConfig == nil {
		finalConfig = projectConfig
	} else {
		finalConfig = mergeConfigs(finalConfig, projectConfig)
	}

	// 3. Local overrides.
	projectDir := filepath.Dir(projectPath)
	for _, name := range overrideNames {
		overridePath := filepath.Join(projectDir, name)
		if _, err := os.Stat(overridePath); err != nil {
			continue
		}
		overrideConfig, err := readRaw(overridePath)
		if err != nil {
			logger.WithError(err).WithField("path", overridePath).Warn("Failed to parse override file, skipping")
			continue
		}
		logger.WithField("path", overridePath).Debug("Loading local override configuration")
		finalConfig = mergeConfigs(finalConfig, overrideConfig)
	}

	if err := finalize(finalConfig); err != nil {
		return nil, err
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(finalConfig); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(data))
		}
	}

	return finalConfig, nil
}

// LoadFromBytes parses configuration from a byte array in the given format
// (FormatYAML or FormatTOML).
func LoadFromBytes(data []byte, format string) (*Config, error) {
	cfg, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finalize validates against the schema, applies defaults and runs the
// semantic checks.
func finalize(cfg *Config) error {
	validator, err := NewSchemaValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}

	if err := validator.Validate(cfg); err != nil {
		wrapped := errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
		var issues schema.Issues
		if stderrors.As(err, &issues) {
			wrapped = wrapped.WithDetail("issues", issues)
		}
		return wrapped
	}

	cfg.SetDefaults()

	return cfg.Validate()
}

// readRaw decodes a file without defaults or validation.
func readRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(data, formatFor(path))
}

func decode(data []byte, format string) (*Config, error) {
	expanded := []byte(expandEnvVars(string(data)))

	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(expanded, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
		// Unknown top-level tables become extensions, as with YAML's inline map.
		var raw map[string]interface{}
		if err := toml.Unmarshal(expanded, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
		for key, value := range raw {
			if isCoreKey(key) {
				continue
			}
			if cfg.Extensions == nil {
				cfg.Extensions = make(map[string]interface{})
			}
			cfg.Extensions[key] = value
		}
	case FormatYAML, "":
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
		}
	default:
		return nil, errors.ConfigInvalid("unsupported config format").WithDetail("format", format)
	}

	return &cfg, nil
}

func isCoreKey(key string) bool {
	switch key {
	case "version", "session", "tui", "server":
		return true
	}
	return false
}

func formatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// FindConfigFile searches for stroke configuration files with the following precedence:
// 1. Current directory up to filesystem root
// 2. XDG config directory (~/.config/stroke/stroke.yml)
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getXDGConfigPath returns the global stroke.yml path
func getXDGConfigPath() string {
	return paths.GlobalConfigFile()
}
