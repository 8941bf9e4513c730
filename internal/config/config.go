package config

import (
	"encoding/json"
	stderrors "errors"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joeshaw/envdecode"

	"github.com/vango-dev/forms/internal/errors"
	"github.com/vango-dev/forms/pkg/form"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "formkit.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 8080

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultDefinition is the definition file used when none is configured.
	DefaultDefinition = "form.yaml"

	// DefaultOutput is the directory snapshots are written to when no
	// bucket is configured.
	DefaultOutput = "dist"
)

// Config represents the complete formkit.json configuration.
type Config struct {
	// Definition is the path to the form definition (YAML or JSON).
	Definition string `json:"definition,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains snapshot publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// Classes overrides the CSS class names emitted by the renderer.
	Classes ClassesConfig `json:"classes,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" env:"FORMKIT_HOST"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" env:"FORMKIT_PORT"`

	// Secret signs share tokens. Tokens do not survive restarts when empty.
	Secret string `json:"secret,omitempty" env:"FORMKIT_SECRET"`

	// Watch reloads the definition when the file changes.
	Watch bool `json:"watch,omitempty"`
}

// PublishConfig contains snapshot publishing settings.
type PublishConfig struct {
	// Bucket is the S3 bucket. Snapshots go to Output when empty.
	Bucket string `json:"bucket,omitempty" env:"FORMKIT_BUCKET"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty" env:"FORMKIT_REGION"`

	// Endpoint points at an S3-compatible service instead of AWS.
	Endpoint string `json:"endpoint,omitempty" env:"FORMKIT_ENDPOINT"`

	// PathStyle forces path-style bucket addressing, as MinIO expects.
	PathStyle bool `json:"pathStyle,omitempty"`

	// Output is the local directory used when Bucket is empty.
	Output string `json:"output,omitempty"`
}

// ClassesConfig mirrors form.Classes in JSON form.
type ClassesConfig struct {
	Valid    string `json:"valid,omitempty"`
	Invalid  string `json:"invalid,omitempty"`
	Pristine string `json:"pristine,omitempty"`
	Touched  string `json:"touched,omitempty"`
	Error    string `json:"error,omitempty"`
	Field    string `json:"field,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Definition: DefaultDefinition,
		Preview: PreviewConfig{
			Host:  DefaultHost,
			Port:  DefaultPort,
			Watch: true,
		},
		Publish: PublishConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for formkit.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path, then applies
// environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("F040").
				WithDetail("No formkit.json found in " + filepath.Dir(path)).
				WithSuggestion("Create formkit.json or pass the definition file explicitly")
		}
		return nil, errors.New("F040").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("F040").
			WithDetail("Failed to parse formkit.json: "+err.Error()).
			WithLocation(path, 0, 0).
			WithSuggestion("Check that formkit.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from FORMKIT_* environment variables.
// Unset variables leave the current values alone.
func (c *Config) ApplyEnv() error {
	err := envdecode.Decode(c)
	if err != nil && !stderrors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return errors.New("F041").Wrap(err).WithSuggestion("Check the FORMKIT_* environment variables")
	}
	return nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("F040").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("F040").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Definition == "" {
		c.Definition = DefaultDefinition
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Publish.Output == "" {
		c.Publish.Output = DefaultOutput
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("F041").
			WithDetail("preview.port must be between 0 and 65535")
	}
	if c.Publish.Bucket != "" && c.Publish.Region == "" && c.Publish.Endpoint == "" {
		return errors.New("F041").
			WithDetail("publish.region is required when publish.bucket is set").
			WithSuggestion("Set publish.region in formkit.json or FORMKIT_REGION")
	}
	return nil
}

// PreviewAddress returns the listen address for the preview server.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// DefinitionPath returns the definition path resolved against the config
// directory.
func (c *Config) DefinitionPath() string {
	return c.resolve(c.Definition)
}

// OutputPath returns the snapshot output directory resolved against the
// config directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Publish.Output)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// FormClasses returns the configured classes with defaults filled in.
func (c *Config) FormClasses() form.Classes {
	return form.Classes{
		Valid:    c.Classes.Valid,
		Invalid:  c.Classes.Invalid,
		Pristine: c.Classes.Pristine,
		Touched:  c.Classes.Touched,
		Error:    c.Classes.Error,
		Field:    c.Classes.Field,
	}.Merge()
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing formkit.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("F040").
				WithDetail("No formkit.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory or its nearest parent holding formkit.json. Without one it
// returns the defaults, with environment overrides applied.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		cfg := New()
		cfg.configPath = filepath.Join(wd, ConfigFileName)
		if err := cfg.ApplyEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(root)
}
