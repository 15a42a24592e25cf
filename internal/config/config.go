// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads datecalc settings with viper.
//
// Settings come from, in increasing priority: defaults, the config file
// ($HOME/.datecalc/config.yaml unless a path is given), DATECALC_*
// environment variables and bound command line flags.
package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/viper"

	"gonih.org/instant"
	"gonih.org/instant/internal/logging"
	"gonih.org/instant/locale/pl"
	"gonih.org/instant/ntpclock"
)

var log = logging.GetLogger()

// BaseDir is the directory below $HOME holding the default config file.
const BaseDir = ".datecalc"

// EnvPrefix prefixes environment variables, e.g. DATECALC_TIMEZONE.
const EnvPrefix = "DATECALC"

// Keys.
const (
	KeyFormat     = "format"
	KeyRaw        = "raw"
	KeyTimezone   = "timezone"
	KeyLocale     = "locale"
	KeyNTPEnabled = "ntp.enabled"
	KeyNTPServer  = "ntp.server"
	KeyNTPTimeout = "ntp.timeout"
)

// Config holds the settings of a datecalc run.
type Config struct {
	Format   string
	Raw      bool
	Timezone string
	Locale   string
	NTP      NTPConfig
}

// NTPConfig configures the NTP corrected clock.
type NTPConfig struct {
	Enabled bool
	Server  string
	Timeout time.Duration
}

// Default returns the built in settings.
func Default() *Config {
	return &Config{
		Format:   instant.DefaultLayout,
		Timezone: "Local",
		Locale:   "en",
		NTP: NTPConfig{
			Server:  ntpclock.DefaultServer,
			Timeout: ntpclock.DefaultTimeout,
		},
	}
}

// SetDefaults registers the default of every key in v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyRaw, d.Raw)
	v.SetDefault(KeyTimezone, d.Timezone)
	v.SetDefault(KeyLocale, d.Locale)
	v.SetDefault(KeyNTPEnabled, d.NTP.Enabled)
	v.SetDefault(KeyNTPServer, d.NTP.Server)
	v.SetDefault(KeyNTPTimeout, d.NTP.Timeout)
}

// DefaultDir returns $HOME/.datecalc.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.WithError(err).Debug("no home directory")
		return BaseDir
	}
	return filepath.Join(home, BaseDir)
}

// New returns a viper instance with defaults and environment bindings. If
// path is empty, config.yaml in DefaultDir is used when it exists.
func New(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	return v
}

// Read reads the config file of v. A missing default config file is not an
// error; a missing explicit one is.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		log.WithField("file", v.ConfigFileUsed()).Debug("config file loaded")
		return nil
	case errors.As(err, &notFound):
		log.Debug("no config file, using defaults")
		return nil
	}
	return oops.In("config").With("file", v.ConfigFileUsed()).Wrapf(err, "reading config")
}

// Load is New followed by Read and FromViper.
func Load(path string) (*Config, error) {
	v := New(path)
	if err := Read(v); err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper builds a Config from the current settings of v.
func FromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		Format:   v.GetString(KeyFormat),
		Raw:      v.GetBool(KeyRaw),
		Timezone: v.GetString(KeyTimezone),
		Locale:   strings.ToLower(v.GetString(KeyLocale)),
		NTP: NTPConfig{
			Enabled: v.GetBool(KeyNTPEnabled),
			Server:  v.GetString(KeyNTPServer),
			Timeout: v.GetDuration(KeyNTPTimeout),
		},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the location and locale are known.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.Locale {
	case "en", "pl":
	default:
		return oops.In("config").With("locale", c.Locale).Errorf("unknown locale %q, want en or pl", c.Locale)
	}
	if c.NTP.Timeout < 0 {
		return oops.In("config").With("timeout", c.NTP.Timeout).Errorf("negative NTP timeout")
	}
	return nil
}

// Location loads the configured time zone. "Local" and "" mean time.Local.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, oops.In("config").With("timezone", c.Timezone).Wrapf(err, "loading time zone")
	}
	return loc, nil
}

// Layout returns the display layout, which is instant.Raw if Raw is set.
func (c *Config) Layout() string {
	if c.Raw {
		return instant.Raw
	}
	return c.Format
}

// Names returns month and weekday names for the configured locale.
func (c *Config) Names() instant.Names {
	if c.Locale == "pl" {
		return pl.Names{}
	}
	return instant.English
}

// Apply sets the process defaults of package instant from c. If NTP is
// enabled the clock is synchronized once; a failed sync is logged and the
// system clock stays in use.
func (c *Config) Apply(ctx context.Context) error {
	loc, err := c.Location()
	if err != nil {
		return err
	}
	instant.SetDefaultLocation(loc)
	instant.SetDefaultFormat(c.Layout())
	if !c.NTP.Enabled {
		return nil
	}
	clk := ntpclock.New(c.NTP.Server, c.NTP.Timeout, nil)
	if err := clk.Sync(ctx); err != nil {
		log.WithError(err).Warn("NTP sync failed, using the system clock")
		return nil
	}
	instant.SetClock(clk)
	return nil
}
