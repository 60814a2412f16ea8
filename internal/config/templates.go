package config

import (
	"os"
	"path/filepath"
)

const configTemplate = `# paperdesk configuration

[account]
# Starting cash for a fresh simulated account.
initial_capital = 1000000.0
currency = "CNY"

[fees]
commission_rate = 0.00025
min_commission = 5.0
transfer_fee_rate = 0.00002
stamp_duty_rate = 0.001

[store]
# path = "~/.config/paperdesk/paperdesk.db"
key = "default"
# Persisted ledgers older than this are discarded on load.
staleness_days = 7

[logging]
level = "info"
console = true
file = true
`

// writeTemplate creates a commented config template on first run so users
// have something to edit.
func writeTemplate(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0644)
}
