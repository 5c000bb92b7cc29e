package main

import "time"

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=5000"`
	LivenessThreshold time.Duration `env:"LIVENESS_THRESHOLD,default=10s"`
	ScanInterval      time.Duration `env:"SCAN_INTERVAL,default=15s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}
