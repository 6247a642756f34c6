package config

type Seed struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"false"`
	// File is a YAML dataset. The embedded default dataset is used when empty.
	File string `env:"FILE,expand"`
}
