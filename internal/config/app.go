package config

// App holds the values served by the home endpoint.
type App struct {
	WelcomeMessage string `env:"WELCOME_MESSAGE,expand" envDefault:"Welcome to eezycollectionz"`
	Author         string `env:"AUTHOR,expand" envDefault:"wagner1975"`
}
