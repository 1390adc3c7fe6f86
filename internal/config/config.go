package config

import "github.com/spf13/viper"

// Config is the slice of settings the speech core consumes.
type Config struct {
	Engine string // engine executable; empty means look one up on PATH
	Speed  int    // engine speed units (espeak words per minute)
	Follow bool   // scroll the viewport along with region speech
}

func SetDefaults() {
	viper.SetDefault("speech.engine", "")
	viper.SetDefault("speech.speed", 175)
	viper.SetDefault("speech.follow", false)
}

// Load reads the speech settings out of viper.
func Load() Config {
	return Config{
		Engine: viper.GetString("speech.engine"),
		Speed:  viper.GetInt("speech.speed"),
		Follow: viper.GetBool("speech.follow"),
	}
}
