package sim

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"visynth/sim/log"
	"visynth/vid/shaders"
)

type Config struct {
	Video   VideoConfig   `toml:"video"`
	Control ControlConfig `toml:"control"`
	Display DisplayConfig `toml:"display"`

	TraceOut io.WriteCloser `toml:"-"`
}

type VideoConfig struct {
	DisableVSync bool   `toml:"disable_vsync"`
	Monitor      int32  `toml:"monitor"`
	Scale        int    `toml:"scale"`
	Shader       string `toml:"shader"`
}

func (vcfg *VideoConfig) Check() {
	if vcfg.Scale <= 0 {
		vcfg.Scale = 1
	}
	// Ensure we have a valid shader.
	if vcfg.Shader == "" {
		vcfg.Shader = shaders.DefaultName
	}
	if !slices.Contains(shaders.Names(), vcfg.Shader) {
		log.ModSim.Warnf("Invalid shader name %q, fallback to %q", vcfg.Shader, shaders.DefaultName)
		vcfg.Shader = shaders.DefaultName
	}
}

type ControlConfig struct {
	RPCPort     int    `toml:"rpc_port"`
	CommandFile string `toml:"command_file"`
	WSAddr      string `toml:"ws_addr"`
}

// DisplayConfig sets the control register levels at power up.
type DisplayConfig struct {
	Mode      uint8 `toml:"mode"`
	Amplitude uint8 `toml:"amplitude"`
}

var ConfigDir string = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("visynth")
	if err := configdir.MakePath(dir); err != nil {
		log.ModSim.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})()

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the visynth config
// directory, or provides a default one.
func LoadConfigOrDefault() Config {
	cfg := Config{
		Display: DisplayConfig{Mode: 0, Amplitude: 128},
	}
	if _, err := toml.DecodeFile(filepath.Join(ConfigDir, cfgFilename), &cfg); err != nil {
		return cfg
	}
	return cfg
}

// SaveConfig into the visynth config directory.
func SaveConfig(cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(ConfigDir, cfgFilename), buf, 0644)
}
