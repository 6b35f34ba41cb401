package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/winematch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "winematch")
	dataDir := filepath.Join(home, ".local", "share", "winematch")

	// Create directories
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'winematch config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'winematch options' to see the tags you can pick")
	fmt.Println("  2. Run 'winematch recommend --words bold' or 'winematch select'")
	fmt.Println("  3. Optionally import your own wines with 'winematch catalog import <file>'")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("# No config file found. Run 'winematch config init' to create one.")
			fmt.Println("# Built-in defaults:")
			fmt.Println()
			defaults, err := toml.Marshal(config.Default())
			if err != nil {
				return fmt.Errorf("failed to encode defaults: %w", err)
			}
			fmt.Print(string(defaults))
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# winematch configuration

[catalog]
# Where wines come from: "builtin", "file" or "database"
source = "builtin"
# TOML catalog used when source = "file"
# path = "~/.config/winematch/wines.toml"

[database]
# Holds wines imported with 'winematch catalog import'
path = "~/.local/share/winematch/winematch.db"

# Tags that can be selected. Leave out a list to keep the built-in one.
# [options]
# words = ["bold", "crisp", "light"]
# foods = ["red meat", "seafood", "cheese"]
# moods = ["romantic", "casual", "evening"]

[log]
level = "warn"        # debug, info, warn, error
format = "console"    # console or json

[mcp]
enabled = true
transport = "stdio"
`
