package config

import (
	"github.com/BurntSushi/toml"
	"github.com/g-m-twostay/go-containers/Heaps"
	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Console configures a heapctl console session.
type Console struct {
	Kind       string `toml:"kind"`        // "min" or "max".
	LogLevel   string `toml:"log_level"`   // Any level logrus can parse.
	Prompt     string `toml:"prompt"`      // Written before reading each line, empty for none.
	PrintOrder string `toml:"print_order"` // Default order of "print": pre, in, post or level.
	Echo       bool   `toml:"echo"`        // Echo each command back, useful when reading a script.
}

func Default() *Console {
	return &Console{
		Kind:       "min",
		LogLevel:   "info",
		Prompt:     "> ",
		PrintOrder: "level",
	}
}

// Read the configuration at path on top of the defaults. Returns the defaults
// and an error if the file can't be decoded.
func Read(path string) (*Console, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return Default(), errors.Wrapf(err, "config: couldn't read %s", path)
	}
	return c, nil
}

// Validate checks every field can be parsed.
func (c *Console) Validate() error {
	if _, ok := Heaps.ParseKind(c.Kind); !ok {
		return errors.Errorf("config: unknown heap kind %q", c.Kind)
	}
	if _, ok := Trees.ParseOrder(c.PrintOrder); !ok {
		return errors.Errorf("config: unknown print order %q", c.PrintOrder)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}

// HeapKind is Kind parsed, Heaps.Min if it's invalid.
func (c *Console) HeapKind() Heaps.Kind {
	k, _ := Heaps.ParseKind(c.Kind)
	return k
}

// Order is PrintOrder parsed, Trees.LevelOrder if it's invalid.
func (c *Console) Order() Trees.Order {
	if o, ok := Trees.ParseOrder(c.PrintOrder); ok {
		return o
	}
	return Trees.LevelOrder
}

// Level is LogLevel parsed, logrus.InfoLevel if it's invalid.
func (c *Console) Level() logrus.Level {
	if l, err := logrus.ParseLevel(c.LogLevel); err == nil {
		return l
	}
	return logrus.InfoLevel
}
