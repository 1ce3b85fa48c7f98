package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Finadvisor Engine Configuration

[analyzer]
# Z-score at which a spending deviation becomes a warning alert
alert_zscore_warning = 2.0
# Z-score at which a spending deviation becomes a critical alert
alert_zscore_critical = 3.0
# Number of trailing calendar months used as the historical baseline
rolling_window_periods = 6
# Relative overshoot used when the baseline has no variance (0.5 = 50%)
relative_threshold = 0.5

[projection]
# Default projection horizon in months when the caller does not supply one
default_horizon_periods = 60

[goals]
# Periods by which projected completion must beat the target date for "ahead"
ahead_margin_periods = 2
# Tolerance over the historical average contribution before "behind" (0.15 = 15%)
behind_tolerance = 0.15
# Annual return assumed when solving required contributions
assumed_annual_return = 0.08

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to console
console = true
# Log to rotating file
file = true

[store]
# Persist report bundles and goal snapshots for the history commands
enabled = true
# SQLite database path (defaults to the config directory)
path = ""
`

// createTemplateConfig writes a commented config template to the config
// directory so a first run leaves something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
