package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophgate/internal/flagx"
	"github.com/dmitrijs2005/gophgate/internal/timex"
	"gopkg.in/yaml.v3"
)

// JsonConfig is the file format, JSON or YAML. Pointer fields tell "absent"
// from "empty".
type JsonConfig struct {
	StoreBackend  *string         `json:"store_backend" yaml:"store_backend"`
	Namespace     *string         `json:"namespace" yaml:"namespace"`
	SQLitePath    *string         `json:"sqlite_path" yaml:"sqlite_path"`
	PostgresDSN   *string         `json:"postgres_dsn" yaml:"postgres_dsn"`
	RedisAddr     *string         `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword *string         `json:"redis_password" yaml:"redis_password"`
	RedisDB       *int            `json:"redis_db" yaml:"redis_db"`
	S3Bucket      *string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region      *string         `json:"s3_region" yaml:"s3_region"`
	S3Endpoint    *string         `json:"s3_endpoint" yaml:"s3_endpoint"`
	S3User        *string         `json:"s3_user" yaml:"s3_user"`
	S3Password    *string         `json:"s3_password" yaml:"s3_password"`
	StoreTimeout  *timex.Duration `json:"store_timeout" yaml:"store_timeout"`
	LogLevel      *string         `json:"log_level" yaml:"log_level"`
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// parseJson overlays cfg with the file named on the command line. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON.
// Without a file it does nothing. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &jc)
	default:
		err = json.Unmarshal(data, &jc)
	}
	if err != nil {
		panic(err)
	}

	setIf(&cfg.StoreBackend, jc.StoreBackend)
	setIf(&cfg.Namespace, jc.Namespace)
	setIf(&cfg.SQLitePath, jc.SQLitePath)
	setIf(&cfg.PostgresDSN, jc.PostgresDSN)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisPassword, jc.RedisPassword)
	setIf(&cfg.RedisDB, jc.RedisDB)
	setIf(&cfg.S3Bucket, jc.S3Bucket)
	setIf(&cfg.S3Region, jc.S3Region)
	setIf(&cfg.S3Endpoint, jc.S3Endpoint)
	setIf(&cfg.S3User, jc.S3User)
	setIf(&cfg.S3Password, jc.S3Password)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.StoreTimeout != nil {
		cfg.StoreTimeout = jc.StoreTimeout.Duration
	}
}
