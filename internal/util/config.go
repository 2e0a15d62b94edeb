package util

import (
	"github.com/spf13/viper"
)

// Config holds runtime settings and flags.
type Config struct {
	BasePath   string // key-value store location
	APIKey     string // Gemini API key; empty runs the app offline
	Model      string // structured analysis / crafting / chat model
	ImageModel string // image synthesis model
	Theme      string // UI palette name
}

// LoadConfig resolves settings from an optional .apocalypse-logs config file
// and APOC_-prefixed environment variables, with sane defaults.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.apocalypse-logs")
	v.SetDefault("model", "gemini-2.5-flash")
	v.SetDefault("image_model", "imagen-4.0-generate-001")
	v.SetDefault("theme", "wasteland")
	v.SetConfigName(".apocalypse-logs") // .yaml is implicit
	v.SetEnvPrefix("APOC")
	v.AutomaticEnv()
	v.AddConfigPath("$HOME")
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		BasePath:   v.GetString("path"),
		Model:      v.GetString("model"),
		ImageModel: v.GetString("image_model"),
		Theme:      v.GetString("theme"),
	}, nil
}
