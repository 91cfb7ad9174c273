package main

import (
	"fmt"
	"strings"

	"github.com/limaJavier/advisories/pkg/model"
	"github.com/spf13/viper"
)

const envPrefix = "ADVISORIES"

// loadSettings merges defaults, the optional config file and ADVISORIES_* environment variables
// (e.g. ADVISORIES_WEIGHTS_HASTEACHER=8, ADVISORIES_NUMADVISORIES=4) into allocation settings
func loadSettings(config *viper.Viper, file string) (model.Settings, error) {
	weights := model.DefaultWeights()
	config.SetDefault("weights.hasTeacher", weights.HasTeacher)
	config.SetDefault("weights.sexDiverse", weights.SexDiverse)
	config.SetDefault("weights.gradeDiverse", weights.GradeDiverse)
	config.SetDefault("weights.equalPeople", weights.EqualPeople)
	config.SetDefault("numAdvisories", 0)
	config.SetDefault("mutualBans", false)

	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if file != "" {
		config.SetConfigFile(file)
		if err := config.ReadInConfig(); err != nil {
			return model.Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return model.DecodeSettings(config.AllSettings())
}
