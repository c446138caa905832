package flats

import "time"

// Config holds the monitoring settings.
type Config struct {
	// IntervalSeconds is the pause between scheduled passes.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"3600"`
	// FirstDelaySeconds delays the first scheduled pass after startup.
	FirstDelaySeconds int `mapstructure:"first_delay_seconds" default:"5"`
	// ComplexName is shown in report headers.
	ComplexName string `mapstructure:"complex_name" default:"Yauza Park"`
	// TopLimit is the size of the lowest-price and cheapest-free blocks of reports.
	TopLimit int `mapstructure:"top_limit" default:"3"`
	// CheapestLimit is the default size of the cheapest-flats listings.
	CheapestLimit int `mapstructure:"cheapest_limit" default:"10"`
	// StatsCacheSeconds is how long a stats report is served from memory. 0 disables caching.
	StatsCacheSeconds int `mapstructure:"stats_cache_seconds" default:"60"`
	// ArchiveKeep is how many archived snapshots survive pruning. 0 keeps all.
	ArchiveKeep int `mapstructure:"archive_keep" default:"168"`
}

// Interval returns the pause between passes, at least one second.
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return time.Second
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}

// FirstDelay returns the delay before the first pass.
func (c Config) FirstDelay() time.Duration {
	if c.FirstDelaySeconds < 0 {
		return 0
	}
	return time.Duration(c.FirstDelaySeconds) * time.Second
}

func (c Config) topLimit() int {
	if c.TopLimit <= 0 {
		return 3
	}
	return c.TopLimit
}

func (c Config) cheapestLimit() int {
	if c.CheapestLimit <= 0 {
		return 10
	}
	return c.CheapestLimit
}
