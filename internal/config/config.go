// Package config holds the settings the planar command reads from a TOML file.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/osuushi/planar/astar"
	"github.com/osuushi/planar/closest"
	"github.com/osuushi/planar/geom"
	"github.com/osuushi/planar/hull"
	"github.com/pkg/errors"
)

type Bounds struct {
	MinX float64 `toml:"min_x"`
	MinY float64 `toml:"min_y"`
	MaxX float64 `toml:"max_x"`
	MaxY float64 `toml:"max_y"`
}

func (b Bounds) BBox() geom.BBox {
	return geom.BBox{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
}

// Config is decoded from a file like
//
//   closest = "sweep"
//   hull = "quickhull"
//   heuristic = "euclidean"
//
//   [bounds]
//   min_x = -15.0
//   min_y = -15.0
//   max_x = 15.0
//   max_y = 15.0
//
// Keys left out keep their defaults.
type Config struct {
	Closest   closest.Strategy `toml:"closest"`
	Hull      hull.Strategy    `toml:"hull"`
	Heuristic astar.Heuristic  `toml:"heuristic"`
	// Voronoi clipping box for proximity graphs
	Bounds Bounds `toml:"bounds"`
}

func Default() *Config {
	return &Config{
		Closest:   closest.LineSweep,
		Hull:      hull.QuickHull,
		Heuristic: astar.Euclidean,
		Bounds:    Bounds{MinX: -15, MinY: -15, MaxX: 15, MaxY: 15},
	}
}

// Decode r on top of the defaults. Unknown keys are an error, so that typos
// don't silently fall back to defaults.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	meta, err := toml.DecodeReader(r, c)
	if err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, errors.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return c, nil
}

func (c *Config) Validate() error {
	b := c.Bounds
	if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
		return errors.Errorf("bounds %+v are empty", b)
	}
	return nil
}
