package config

type Generator struct {
	MaxRetriesToGenerateID int `env:"MAX_RETRIES_TO_GENERATE_ID,expand" envDefault:"3"`
}
