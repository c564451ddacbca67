package config

func defaultConfig() *Config {
	return &Config{
		MarpPath:        "marp",
		ThemeDirectory:  "~/.config/marpmcp/themes",
		OutputDirectory: "~/.local/share/marpmcp/decks",
		TimeoutSeconds:  60,
		AllowLocalFiles: false,
	}
}

func DefaultSettings() *Settings {
	return &Settings{
		MarpPath:        "marp",
		ThemeDir:        "~/.config/marpmcp/themes",
		OutputDir:       "~/.local/share/marpmcp/decks",
		TimeoutSeconds:  60,
		AllowLocalFiles: false,
	}
}

func GenerateSettingsTemplate() string {
	return `# marpmcp Configuration
# Location: ~/.config/marpmcp/settings.toml
# This file uses TOML format: https://toml.io

# Marp CLI executable (name on PATH or absolute path)
# Install with: npm install -g @marp-team/marp-cli
marp_path = "marp"

# Directory scanned for custom CSS themes
theme_dir = "~/.config/marpmcp/themes"

# Directory where generated presentations are written
output_dir = "~/.local/share/marpmcp/decks"

# Maximum seconds a single Marp invocation may run
timeout_seconds = 60

# Pass --allow-local-files to Marp on every conversion
# (required for decks that embed local images)
allow_local_files = false
`
}
