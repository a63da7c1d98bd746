package shared

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr string `yaml:"addr" json:"addr"`
	Root string `yaml:"root" json:"root"`

	EntryFile      string `yaml:"entry_file" json:"entry_file"`
	ShiftEntryFile string `yaml:"shift_entry_file" json:"shift_entry_file"`

	SecurityHeaders bool `yaml:"security_headers" json:"security_headers"`
	FakeEndpoints   bool `yaml:"fake_endpoints" json:"fake_endpoints"`
	RewriteRoot     bool `yaml:"rewrite_root" json:"rewrite_root"`
}

// Default returns the enhanced-server defaults: port 9000, current
// directory as serving root, full header and fake-endpoint surface.
func Default() *Config {
	return &Config{
		Addr:            ":9000",
		Root:            ".",
		EntryFile:       "demo-perfect.html",
		ShiftEntryFile:  "shift-system-spa.html",
		SecurityHeaders: true,
		FakeEndpoints:   true,
	}
}

// Load reads a YAML config file over the defaults, then applies env
// overrides. A missing file is fine unless required is set (the path
// came from a flag or env, so a typo should not be silent).
func Load(path string, required bool) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			c.applyEnv()
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	c.applyEnv()
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SPADEV_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("SPADEV_ROOT"); v != "" {
		c.Root = v
	}
}

// ApplyMinimal switches to the plain-static preset: no security or
// informational headers, no fake endpoints, and / rewritten to the
// entry file instead of relying on the directory index.
func (c *Config) ApplyMinimal() {
	c.SecurityHeaders = false
	c.FakeEndpoints = false
	c.RewriteRoot = true
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
