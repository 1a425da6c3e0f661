package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Storage     Storage
	Admin       Admin
	Store       Store `envPrefix:"STORE_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Storage selects where the storefront records live.
// Driver is "sqlite" (file at Path) or "memory".
type Storage struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	Path   string `env:"STORAGE_PATH" envDefault:"crimson-store.db"`
}

// Admin holds the shared secret that unlocks the orders tab.
type Admin struct {
	Password string `env:"ADMIN_PASSWORD" envDefault:"crimson-admin"`
}

type Store struct {
	Name       string `env:"NAME" envDefault:"CrimsonMC"`
	DiscordURL string `env:"DISCORD_URL" envDefault:"https://discord.gg/A4mZvAWE"`
}
