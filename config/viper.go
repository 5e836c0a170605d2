package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// load resolves settings of type T from the process environment. Every key in
// defaults is looked up as the upper-cased env var of the same name; empty
// values count as unset.
func load[T any](defaults map[string]any) (T, error) {
	var result T
	vi := viper.New()
	for k, v := range defaults {
		vi.SetDefault(k, v)
	}
	vi.AutomaticEnv()
	if err := vi.Unmarshal(&result); err != nil {
		return result, fmt.Errorf("error reading settings from environment: %w", err)
	}
	return result, nil
}

func check[T any](value T) (T, error) {
	if err := validate.Struct(value); err != nil {
		return value, fmt.Errorf("invalid settings: %w", err)
	}
	return value, nil
}
