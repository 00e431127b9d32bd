package trainer

import (
	"time"

	"github.com/Diavel78/product-trainer/pkg/errors"
	"github.com/Diavel78/product-trainer/pkg/feeds"
	"github.com/Diavel78/product-trainer/pkg/resolve"
)

// Option is a function that configures a Trainer instance.
type Option func(*config) error

// config collects the settings options apply.
type config struct {
	sources      map[feeds.ID]feeds.Source
	snapshotPath string
	locations    resolve.LocationConfig
	categories   resolve.CategoryConfig
	clock        func() time.Time
}

func defaultConfig() *config {
	return &config{
		sources:    make(map[feeds.ID]feeds.Source),
		locations:  resolve.DefaultLocationConfig(),
		categories: resolve.DefaultCategoryConfig(),
		clock:      time.Now,
	}
}

// WithSource registers a feed source. Registering a second source for
// the same feed replaces the first.
func WithSource(source feeds.Source) Option {
	return func(c *config) error {
		if source == nil {
			return errors.NewConfigError("trainer", "nil feed source", nil)
		}
		if !source.ID().IsValid() {
			return errors.NewConfigError("trainer", "unknown feed id: "+source.ID().String(), nil)
		}
		c.sources[source.ID()] = source
		return nil
	}
}

// WithSnapshotPath configures where the condensed inventory snapshot is
// persisted between runs. Without it every run behaves as a first run
// and nothing is written.
func WithSnapshotPath(path string) Option {
	return func(c *config) error {
		c.snapshotPath = path
		return nil
	}
}

// WithLocationConfig replaces the default store resolution table.
func WithLocationConfig(cfg resolve.LocationConfig) Option {
	return func(c *config) error {
		c.locations = cfg
		return nil
	}
}

// WithCategoryConfig replaces the default category resolution table.
func WithCategoryConfig(cfg resolve.CategoryConfig) Option {
	return func(c *config) error {
		c.categories = cfg
		return nil
	}
}

// WithClock overrides the time source used for report and snapshot
// timestamps. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *config) error {
		if clock == nil {
			return errors.NewConfigError("trainer", "nil clock", nil)
		}
		c.clock = clock
		return nil
	}
}
