package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/lumideck/lumideck/internal/engine"
	"github.com/lumideck/lumideck/internal/vc"
)

// InputDeviceConfig describes one external control surface. The position in
// the device list is the input universe id it feeds.
type InputDeviceConfig struct {
	ID      string `json:"id"`      // Unique identifier
	Name    string `json:"name"`    // User-friendly name, doubles as the universe name
	InPort  string `json:"in_port"` // MIDI input port name
	Profile string `json:"profile"` // Input profile name
}

// NewInputDeviceConfig creates a new device config with a generated ID
func NewInputDeviceConfig() InputDeviceConfig {
	return InputDeviceConfig{
		ID:   uuid.New().String(),
		Name: "New Device",
	}
}

// MatrixConfig is the persisted form of a virtual-console matrix widget
type MatrixConfig struct {
	ID             uint32              `json:"id"`
	Caption        string              `json:"caption"`
	Function       uint32              `json:"function"`
	InstantChanges bool                `json:"instant_changes"`
	Page           int                 `json:"page"`
	InputSource    engine.InputSource  `json:"input_source"`
	Controls       []*vc.MatrixControl `json:"controls,omitempty"`
}

// ToMatrix rebuilds the runtime widget from its persisted form
func (mc *MatrixConfig) ToMatrix() *vc.Matrix {
	m := vc.NewMatrix(mc.ID)
	m.Caption = mc.Caption
	m.Function = mc.Function
	m.InstantChanges = mc.InstantChanges
	m.Page = mc.Page
	m.InputSource = mc.InputSource
	for _, c := range mc.Controls {
		m.AddCustomControl(c.Clone())
	}
	return m
}

// MatrixConfigFrom captures a runtime widget into its persisted form
func MatrixConfigFrom(m *vc.Matrix) MatrixConfig {
	mc := MatrixConfig{
		ID:             m.ID,
		Caption:        m.Caption,
		Function:       m.Function,
		InstantChanges: m.InstantChanges,
		Page:           m.Page,
		InputSource:    m.InputSource,
	}
	for _, c := range m.CustomControls() {
		mc.Controls = append(mc.Controls, c.Clone())
	}
	return mc
}

// Config holds application configuration
type Config struct {
	FirstLaunchCompleted bool                `json:"first_launch_completed"`
	OpenAtStartup        bool                `json:"open_at_startup"`
	InputDevices         []InputDeviceConfig `json:"input_devices"`
	Functions            []engine.Function   `json:"functions"`
	Matrices             []MatrixConfig      `json:"matrices"`
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "lumideck"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, returning defaults if not found
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.InputDevices == nil {
		cfg.InputDevices = []InputDeviceConfig{}
	}
	if len(cfg.Matrices) == 0 {
		cfg.Matrices = defaultConfig().Matrices
	}

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		InputDevices: []InputDeviceConfig{},
		Functions: []engine.Function{
			{ID: 0, Name: "Rainbow Swirl", Type: engine.FunctionRGBMatrix},
			{ID: 1, Name: "Plasma Waves", Type: engine.FunctionRGBMatrix},
			{ID: 2, Name: "Blackout", Type: engine.FunctionScene},
		},
		Matrices: []MatrixConfig{
			{ID: 1, Caption: "Matrix 1", Function: engine.NoFunction},
		},
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// BuildDocument constructs the engine document the UI works against:
// functions with their persisted ids, plus one input universe per configured
// device.
func (c *Config) BuildDocument() *engine.Document {
	doc := engine.NewDocument()
	for _, f := range c.Functions {
		doc.RestoreFunction(f)
	}
	for _, dev := range c.InputDevices {
		doc.InputOutputMap().AddUniverse(dev.Name, &engine.InputProfile{
			Name:     dev.Profile,
			Channels: map[uint32]string{},
		})
	}
	return doc
}

// AddInputDevice adds a new device to the config
func (c *Config) AddInputDevice(device InputDeviceConfig) {
	c.InputDevices = append(c.InputDevices, device)
}

// RemoveInputDevice removes a device by ID
func (c *Config) RemoveInputDevice(id string) {
	for i, d := range c.InputDevices {
		if d.ID == id {
			c.InputDevices = append(c.InputDevices[:i], c.InputDevices[i+1:]...)
			return
		}
	}
}

// UpdateInputDevice updates an existing device by ID
func (c *Config) UpdateInputDevice(device InputDeviceConfig) {
	for i, d := range c.InputDevices {
		if d.ID == device.ID {
			c.InputDevices[i] = device
			return
		}
	}
}

// MatrixByID returns the persisted matrix with the given id, or nil
func (c *Config) MatrixByID(id uint32) *MatrixConfig {
	for i := range c.Matrices {
		if c.Matrices[i].ID == id {
			return &c.Matrices[i]
		}
	}
	return nil
}

// StoreMatrix writes a runtime widget back into the config, replacing the
// entry with the same id or appending a new one.
func (c *Config) StoreMatrix(m *vc.Matrix) {
	mc := MatrixConfigFrom(m)
	for i := range c.Matrices {
		if c.Matrices[i].ID == mc.ID {
			c.Matrices[i] = mc
			return
		}
	}
	c.Matrices = append(c.Matrices, mc)
}
