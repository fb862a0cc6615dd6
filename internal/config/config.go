package config

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

// IndexGrowth selects how name indexes react to load.
type IndexGrowth string

const (
	// GrowthFixed keeps the bucket count chosen at allocation.
	GrowthFixed IndexGrowth = "fixed"
	// GrowthRehash rehashes into a larger prime once the load factor is exceeded.
	GrowthRehash IndexGrowth = "grow"
)

// Limits holds every fixed system limit of the catalog and storage core.
type Limits struct {
	// Maximum length of any qualified name (db, db.table, db.table.column).
	MaxNameLength int

	// Table slots allocated for a database on its first create_table.
	InitialTableCapacity int

	// Rows allocated per column on a table's first insert.
	InitialColumnCapacity int

	// Requested bucket count for name indexes (rounded up to a prime).
	IndexBuckets int

	IndexGrowth        IndexGrowth
	IndexMaxLoadFactor float64

	// Upper bound on allocated column cells across the catalog; 0 disables it.
	MemoryBudget int
}

// Logging configures the process logger.
type Logging struct {
	Level  string // debug, info, warn, error
	SeqURL string // empty disables the Seq sink
}

// Config is everything the CLI needs.
type Config struct {
	Limits  Limits
	Logging Logging
}

// DefaultLimits returns limits sized for a small analytical workload.
func DefaultLimits() Limits {
	return Limits{
		MaxNameLength:         64,
		InitialTableCapacity:  8,
		InitialColumnCapacity: 1024,
		IndexBuckets:          769,
		IndexGrowth:           GrowthRehash,
		IndexMaxLoadFactor:    0.75,
		MemoryBudget:          0,
	}
}

func Default() Config {
	return Config{
		Limits: DefaultLimits(),
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate returns an error if any limit is unusable.
func (l Limits) Validate() error {
	if l.MaxNameLength < 1 {
		return fmt.Errorf("max name length must be positive, got %d", l.MaxNameLength)
	}
	if l.InitialTableCapacity < 1 {
		return fmt.Errorf("initial table capacity must be positive, got %d", l.InitialTableCapacity)
	}
	if l.InitialColumnCapacity < 1 {
		return fmt.Errorf("initial column capacity must be positive, got %d", l.InitialColumnCapacity)
	}
	if l.IndexBuckets < 1 {
		return fmt.Errorf("index buckets must be positive, got %d", l.IndexBuckets)
	}
	switch l.IndexGrowth {
	case GrowthFixed:
	case GrowthRehash:
		if l.IndexMaxLoadFactor <= 0 {
			return fmt.Errorf("index max load factor must be positive, got %v", l.IndexMaxLoadFactor)
		}
	default:
		return fmt.Errorf("invalid index growth: %q (must be 'fixed' or 'grow')", l.IndexGrowth)
	}
	if l.MemoryBudget < 0 {
		return fmt.Errorf("memory budget must not be negative, got %d", l.MemoryBudget)
	}
	return nil
}

func (c Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// RegisterFlags binds every setting to a flag on fs, using the current
// values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Limits.MaxNameLength, "max-name-length", c.Limits.MaxNameLength, "Maximum qualified name length")
	fs.IntVar(&c.Limits.InitialTableCapacity, "initial-tables", c.Limits.InitialTableCapacity, "Table slots allocated on first create_table")
	fs.IntVar(&c.Limits.InitialColumnCapacity, "initial-rows", c.Limits.InitialColumnCapacity, "Rows allocated per column on first insert")
	fs.IntVar(&c.Limits.IndexBuckets, "index-buckets", c.Limits.IndexBuckets, "Initial bucket count for name indexes")
	fs.Func("index-growth", "Index growth policy (fixed, grow)", func(s string) error {
		c.Limits.IndexGrowth = IndexGrowth(strings.ToLower(s))
		return nil
	})
	fs.Float64Var(&c.Limits.IndexMaxLoadFactor, "index-load-factor", c.Limits.IndexMaxLoadFactor, "Load factor that triggers an index rehash")
	fs.IntVar(&c.Limits.MemoryBudget, "memory-budget", c.Limits.MemoryBudget, "Maximum column cells allocated (0 = unlimited)")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.Logging.SeqURL, "seq-url", c.Logging.SeqURL, "Seq server URL for structured logs (empty disables)")
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level: %q", s)
	}
	return level, nil
}
