package config

import (
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	//APP NAME
	AppName = "labops"
	//Usage
	Usage = "lab operations toolkit"
	//Vresion Num
	Version = "0.0.1"
)

var (
	mux sync.RWMutex

	// global config
	C Config
)

type Config struct {
	DirectoryConf DirectoryConfig `toml:"directory"`
	AuditConf     AuditConfig     `toml:"audit"`
	HTTPConf      HTTPConfig      `toml:"http"`
	LogConf       LogConfig       `toml:"log"`
}

type DirectoryConfig struct {
	Server   string `toml:"server"`
	Binddn   string `toml:"binddn"`
	Password string `toml:"password"`
	HostBase string `toml:"hostbase"`
	UserBase string `toml:"userbase"`
}

type AuditConfig struct {
	Domain      string `toml:"domain"`
	StaffVMLow  string `toml:"staffvm_low"`
	StaffVMHigh string `toml:"staffvm_high"`
}

type HTTPConfig struct {
	Bind string `toml:"bind"`
}

// LogConfig is log config struct
type LogConfig struct {
	Dir           string `toml:"logdir"`
	Level         string `toml:"loglevel"`
	Logrotatenum  int    `toml:"logrotatenum"`
	Logrotatesize uint64 `toml:"logrotatesize"`
}

func ParseConfig(path string) error {
	mux.Lock()
	defer mux.Unlock()

	if _, err := toml.DecodeFile(path, &C); err != nil {
		return err
	}
	return nil
}

func GetConfig() Config {
	mux.RLock()
	defer mux.RUnlock()
	return C
}
