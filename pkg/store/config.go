package store

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const defaultDatabaseName = ".td.json"

// Config resolves where the task database lives.
type Config interface {
	DatabasePath() string
}

// LoadConfig resolves the default database path: ~/.td.json, overridable
// through an optional ~/.td.yaml config file with a "path" key. The CLI's
// positional argument bypasses this entirely.
func LoadConfig() (Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("path", filepath.Join(home, defaultDatabaseName))
	v.SetConfigName(".td") // .yaml is implicit
	v.AddConfigPath(home)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{path: path}, nil
}

type fileConfig struct {
	path string
}

func (f *fileConfig) DatabasePath() string {
	return f.path
}
