package config

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	Driver string `env:"DRIVER,expand" envDefault:"sqlite"`
	DSN    string `env:"DSN,expand" envDefault:"data.sqlite"`
}
