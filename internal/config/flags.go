package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophgate/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed in
// the package documentation are looked at; anything else on the command line
// is ignored. Parse errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-n", "-f", "-d", "-r", "-b", "-e", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "store backend (sqlite, postgres, redis, s3, memory)")
	fs.StringVar(&cfg.Namespace, "n", cfg.Namespace, "key namespace")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "SQLite database file")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Endpoint, "e", cfg.S3Endpoint, "S3 endpoint")
	storeTimeout := fs.Int("t", int(cfg.StoreTimeout.Seconds()), "store timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only an explicit -t replaces a sub-second value from JSON
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.StoreTimeout = time.Duration(*storeTimeout) * time.Second
		}
	})
}
