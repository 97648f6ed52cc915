package cmd

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/config"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configKeys = []string{"default_model", "endpoint", "revision", "max_retries", "cache_dir"}

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage murmur settings",
	GroupID: "config",
	Long: `Manage the settings stored in ~/.murmur/config.yaml.

Examples:
  murmur config list
  murmur config get default_model
  murmur config set default_model medium
  murmur config set endpoint https://hf-mirror.example.com`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		data, err := yaml.Marshal(cfg)
		if err != nil {
			ui.Fatal("Failed to render config: %v", err)
		}

		fmt.Printf("%s %s\n", ui.Bold("Config file:"), ui.Muted(config.ConfigPath()))
		fmt.Println()
		fmt.Print(string(data))
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		value, err := configValue(cfg, args[0])
		if err != nil {
			ui.Fatal("%v", err)
		}
		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Load without command-line overrides; set writes the file back.
		cfg, err := config.Load()
		if err != nil {
			ui.Fatal("Failed to load config: %v", err)
		}

		if err := setConfigValue(cfg, args[0], args[1]); err != nil {
			ui.Fatal("%v", err)
		}
		if err := config.Save(cfg); err != nil {
			ui.Fatal("Failed to save config: %v", err)
		}
		fmt.Printf("Set %s to %s\n", ui.Keyword(args[0]), ui.Value(args[1]))
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.ConfigPath())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.ConfigPath()

		// Materialize the file so the editor is not handed a missing path.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.Save(loadConfig()); err != nil {
				ui.Fatal("Failed to create config file: %v", err)
			}
		}

		if err := openInEditor(path); err != nil {
			ui.Fatal("Failed to open editor: %v", err)
		}
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Run: func(cmd *cobra.Command, args []string) {
		if !ui.PromptYesNo("Reset all settings to defaults?", false) {
			fmt.Println(ui.Muted("Cancelled"))
			return
		}
		if err := config.Save(config.DefaultConfig()); err != nil {
			ui.Fatal("Failed to reset config: %v", err)
		}
		fmt.Println("Config reset to defaults")
	},
}

func configValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "default_model":
		return cfg.DefaultModel, nil
	case "endpoint":
		return cfg.Endpoint, nil
	case "revision":
		return cfg.Revision, nil
	case "max_retries":
		return strconv.Itoa(cfg.MaxRetries), nil
	case "cache_dir":
		return cfg.ResolvedCacheDir(), nil
	default:
		return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(configKeys, ", "))
	}
}

func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "default_model":
		tier, err := catalog.ParseTier(value)
		if err != nil {
			return err
		}
		cfg.DefaultModel = string(tier)
	case "endpoint":
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("endpoint must be an http(s) URL, got %q", value)
		}
		cfg.Endpoint = value
	case "revision":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("revision cannot be empty")
		}
		cfg.Revision = value
	case "max_retries":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("max_retries must be a non-negative integer, got %q", value)
		}
		cfg.MaxRetries = n
	case "cache_dir":
		cfg.CacheDir = value
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(configKeys, ", "))
	}
	return nil
}

func openInEditor(path string) error {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		for _, candidate := range []string{"nano", "vim", "vi"} {
			if _, err := exec.LookPath(candidate); err == nil {
				editor = candidate
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found; set $EDITOR")
	}

	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

func init() {
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd, configPathCmd, configEditCmd, configResetCmd)
	rootCmd.AddCommand(configCmd)
}
