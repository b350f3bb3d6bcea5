package disk

import (
	"io/ioutil"
	"os"

	env "github.com/jhunt/go-envirotron"
	"gopkg.in/yaml.v2"
)

// Config names the external tools the disk layer shells out to, and where
// run logs end up.  Operators almost never need to touch this; it exists
// for systems that stash their partitioning utilities in odd places.
type Config struct {
	LogDir string `yaml:"log_dir"   env:"CARVE_LOG_DIR"`

	Sgdisk    string `yaml:"sgdisk"    env:"CARVE_SGDISK"`
	Partprobe string `yaml:"partprobe" env:"CARVE_PARTPROBE"`
	Wipefs    string `yaml:"wipefs"    env:"CARVE_WIPEFS"`
	Lsblk     string `yaml:"lsblk"     env:"CARVE_LSBLK"`
	Mkswap    string `yaml:"mkswap"    env:"CARVE_MKSWAP"`
	Swapon    string `yaml:"swapon"    env:"CARVE_SWAPON"`
	Mount     string `yaml:"mount"     env:"CARVE_MOUNT"`
}

// ReadConfig loads the optional configuration file, fills in defaults,
// and applies environment overrides.  A missing file is not an error.
func ReadConfig(path string) (Config, error) {
	config := Config{
		LogDir:    "/var/log/carve",
		Sgdisk:    "sgdisk",
		Partprobe: "partprobe",
		Wipefs:    "wipefs",
		Lsblk:     "lsblk",
		Mkswap:    "mkswap",
		Swapon:    "swapon",
		Mount:     "mount",
	}

	if path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return config, err
		}
		if err == nil {
			if err := yaml.Unmarshal(b, &config); err != nil {
				return config, err
			}
		}
	}

	env.Override(&config)
	return config, nil
}
