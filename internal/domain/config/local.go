package config

import "strings"

// ConfigKey represents an activity configuration key
type ConfigKey string

const (
	ConfigKeyBridgeRepetitions ConfigKey = "bridgeRepetitions"
	ConfigKeySwapRepetitions   ConfigKey = "swapRepetitions"
)

var configKeyAliases = map[string]ConfigKey{
	"bridge":             ConfigKeyBridgeRepetitions,
	"bridgerepetitions":  ConfigKeyBridgeRepetitions,
	"bridge-repetitions": ConfigKeyBridgeRepetitions,
	"swap":               ConfigKeySwapRepetitions,
	"swaprepetitions":    ConfigKeySwapRepetitions,
	"swap-repetitions":   ConfigKeySwapRepetitions,
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyBridgeRepetitions,
		ConfigKeySwapRepetitions,
	}
}

// NormalizeConfigKey resolves a key or one of its aliases (e.g., "bridge" -> "bridgeRepetitions").
// The second result is false for unknown keys.
func NormalizeConfigKey(key string) (ConfigKey, bool) {
	k, ok := configKeyAliases[strings.ToLower(strings.TrimSpace(key))]
	return k, ok
}
