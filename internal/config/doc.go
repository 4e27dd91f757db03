// Package config loads runtime configuration for the GophGate client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c, -config or --config.
//     Files ending in .yaml or .yml are YAML.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   store backend: sqlite, postgres, redis, s3, memory
//	-n string   key namespace
//	-f string   SQLite database file
//	-d string   PostgreSQL DSN
//	-r string   Redis address (host:port)
//	-b string   S3 bucket
//	-e string   S3 endpoint (for MinIO)
//	-t int      store timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Every key is optional; absent keys keep the default. Durations accept
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "store_backend": "redis",
//	  "namespace": "demo",
//	  "redis_addr": "127.0.0.1:6379",
//	  "store_timeout": "3s",
//	  "log_level": "debug"
//	}
//
// The same keys work in YAML:
//
//	store_backend: sqlite
//	sqlite_path: data/localstorage.db
//	store_timeout: 500ms
//
// Environment variables are not read.
package config
