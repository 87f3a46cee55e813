package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/number"
	"github.com/pelletier/go-toml"
)

type Custom struct {
	Number struct {
		ScaleValue *int32 `toml:"scale"`
		Scale      int32  `toml:"-"`
		Rounding   string `toml:"rounding"`
	} `toml:"number"`
	CSV struct {
		Separator  string `toml:"separator"`
		Delimiter  string `toml:"delimiter"`
		Escape     string `toml:"escape"`
		DateLayout string `toml:"date-layout"`
		Header     *bool  `toml:"header"`
	} `toml:"csv"`
	Storage struct {
		Dir        string `toml:"dir"`
		ValueLogGC bool   `toml:"value-log-gc"`
		CacheSize  int    `toml:"cache-size"`
	} `toml:"storage"`
	RPC struct {
		Port int `toml:"port"`
	} `toml:"rpc"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	return config.fill()
}

func Default() *Custom {
	config, err := new(Custom).fill()
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Custom) RoundingMode() number.RoundingMode {
	mode, err := number.ParseRoundingMode(c.Number.Rounding)
	if err != nil {
		panic(err)
	}
	return mode
}

// HasHeader reports whether csv files start with a header line, true
// unless the file says otherwise.
func (c *Custom) HasHeader() bool {
	return c.CSV.Header == nil || *c.CSV.Header
}

func (c *Custom) fill() (*Custom, error) {
	c.Number.Scale = DefaultScale
	if c.Number.ScaleValue != nil {
		c.Number.Scale = *c.Number.ScaleValue
	}
	if c.Number.Scale < 0 || c.Number.Scale > MaxScale {
		return nil, fmt.Errorf("invalid number scale %d", c.Number.Scale)
	}
	if c.Number.Rounding == "" {
		c.Number.Rounding = DefaultRounding
	}
	if _, err := number.ParseRoundingMode(c.Number.Rounding); err != nil {
		return nil, err
	}

	if c.CSV.Separator == "" {
		c.CSV.Separator = ";"
	}
	if c.CSV.Delimiter == "" {
		c.CSV.Delimiter = `"`
	}
	if c.CSV.Escape == "" {
		c.CSV.Escape = `"`
	}
	if c.CSV.DateLayout == "" {
		c.CSV.DateLayout = "02/01/2006"
	}
	for _, s := range []string{c.CSV.Separator, c.CSV.Delimiter, c.CSV.Escape} {
		if len([]rune(s)) != 1 {
			return nil, fmt.Errorf("invalid csv character %q", s)
		}
	}

	if c.Storage.CacheSize == 0 {
		c.Storage.CacheSize = DefaultCacheSize
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = DefaultRPCPort
	}
	if c.Log.Level == 0 {
		c.Log.Level = logger.INFO
	}
	return c, nil
}
