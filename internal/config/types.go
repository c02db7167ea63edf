package config

// Classifier controls how non-loop tiles are classified.
type Classifier struct {
	// Workers is the number of goroutines classifying rows. 1 classifies
	// sequentially.
	Workers int `yaml:"workers"`
}

// Render controls the annotated grid output.
type Render struct {
	Color      bool `yaml:"color"`
	ShowOrigin bool `yaml:"show_origin"`
}

// Config represents the .pipemaze/config.yaml file.
type Config struct {
	LogLevel   string     `yaml:"log_level"`
	Classifier Classifier `yaml:"classifier"`
	Render     Render     `yaml:"render"`
}
