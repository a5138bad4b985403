package config

// Log configures the diagnostic logger. Diagnostics go to stderr so they never
// mix with the CSV snapshot on stdout.
type Log struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[payengine]"`
}

// App is the root configuration.
type App struct {
	Env   string `envconfig:"ENV" default:"development"`
	Input string `envconfig:"INPUT"`
	Log   *Log   `envconfig:"LOG"`
}
