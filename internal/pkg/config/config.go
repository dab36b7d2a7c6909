// Пакет config собирает настройки генератора: значения по умолчанию,
// необязательный yaml-файл и флаги командной строки (флаги важнее файла).
package config

import (
	"os"
	"path/filepath"

	"github.com/mailru/mapstructure"
	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Режимы подсветки ошибок в терминале
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ErrEmptyPath       = errors.New("path to errors dir is empty")
	ErrSameDirs        = errors.New("declaration and destination dirs must differ")
	ErrUnknownColor    = errors.New("unknown color mode")
	ErrNoModule        = errors.New("can't determine module name")
	ErrDecodeConfig    = errors.New("invalid config file")
	ErrReadConfig      = errors.New("can't read config file")
	ErrNewConfigDecode = errors.New("can't create config decoder")
)

type Config struct {
	Path        string `mapstructure:"path"`
	Declaration string `mapstructure:"declaration"`
	Destination string `mapstructure:"destination"`
	Module      string `mapstructure:"module"`
	Color       string `mapstructure:"color"`
	Verbose     bool   `mapstructure:"verbose"`
}

func Default() Config {
	return Config{
		Path:        "./errors",
		Declaration: "declaration",
		Destination: "generated",
		Color:       ColorAuto,
	}
}

// Load читает yaml-файл поверх base. Ключи, которых нет в Config, считаются ошибкой
func Load(filename string, base Config) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrapf(ErrReadConfig, "%s: %s", filename, err)
	}

	return Decode(data, base)
}

// Decode разбирает содержимое yaml-файла поверх base
func Decode(data []byte, base Config) (Config, error) {
	raw := map[string]interface{}{}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrap(ErrDecodeConfig, err.Error())
	}

	ret := base

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// Неиспользованные ключи - скорее всего опечатка в конфиге
		ErrorUnused: true,
		Result:      &ret,
	})
	if err != nil {
		return Config{}, errors.Wrap(ErrNewConfigDecode, err.Error())
	}

	if err := decoder.Decode(raw); err != nil {
		return Config{}, errors.Wrap(ErrDecodeConfig, err.Error())
	}

	return ret, nil
}

func (c Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	if filepath.Clean(c.Declaration) == filepath.Clean(c.Destination) {
		return errors.WithStack(ErrSameDirs)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Wrapf(ErrUnknownColor, "`%s`", c.Color)
	}

	return nil
}

func (c Config) SrcDir() string {
	return filepath.Join(c.Path, c.Declaration)
}

func (c Config) DstDir() string {
	return filepath.Join(c.Path, c.Destination)
}

// ResolveModule если имя модуля не задано явно, то берём его из go.mod
func (c Config) ResolveModule(goModFile string) (string, error) {
	if c.Module != "" {
		return c.Module, nil
	}

	goModBytes, err := os.ReadFile(goModFile)
	if err != nil {
		return "", errors.Wrapf(ErrNoModule, "read %s: %s", goModFile, err)
	}

	module := modfile.ModulePath(goModBytes)
	if module == "" {
		return "", errors.Wrapf(ErrNoModule, "no module directive in %s", goModFile)
	}

	return module, nil
}
