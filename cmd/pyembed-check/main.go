package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/pyembed/go/pyembed/pkg"
	"github.com/provide-io/pyembed/go/pyembed/pkg/interp"
	"github.com/provide-io/pyembed/go/pyembed/pkg/logging"
)

const version = "0.1.0"

var (
	configPath   string
	emitFormat   string
	platformName string
	setValues    []string
	clearFields  []string
	logLevel     string
	rootCmd      *cobra.Command
	versionFlag  bool
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "pyembed-check",
		Short: "Validate interpreter config documents",
		Long:  `Validate interpreter config documents and show the two-pass apply plan`,
		Run:   checkConfig,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config document (.json or .toml)")
	rootCmd.Flags().StringVar(&emitFormat, "emit", "plan", "Output format (plan, json, toml)")
	rootCmd.Flags().StringVar(&platformName, "platform", "", "Platform family for defaults (windows, darwin, unix)")
	rootCmd.Flags().StringArrayVar(&setValues, "set", nil, "Override a field as name=value (repeatable)")
	rootCmd.Flags().StringArrayVar(&clearFields, "clear", nil, "Unset a field by name (repeatable)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("pyembed-check %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolvePlatform(logger hclog.Logger) interp.PlatformFamily {
	switch platformName {
	case "":
		return interp.CurrentPlatformFamily()
	case "windows":
		return interp.PlatformWindows
	case "darwin":
		return interp.PlatformDarwin
	case "unix":
		return interp.PlatformUnix
	default:
		logger.Warn("⚠️ Unknown platform family, using current", "platform", platformName)
		return interp.CurrentPlatformFamily()
	}
}

func checkConfig(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("pyembed-check %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		return
	}

	level := logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	logger := logging.NewLogger("pyembed-check", level, nil)

	cfg := interp.DefaultConfig()
	if configPath != "" {
		logger.Debug("📖 Loading config document", "path", configPath)
		loaded, err := pkg.LoadConfigFile(configPath)
		if err != nil {
			logger.Error("❌ Failed to load config document", "path", configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	for _, kv := range setValues {
		name, value, found := strings.Cut(kv, "=")
		if !found {
			logger.Error("❌ Invalid --set value, expected name=value", "got", kv)
			os.Exit(1)
		}
		if err := cfg.SetField(name, value); err != nil {
			logger.Error("❌ Failed to set field", "field", name, "error", err)
			os.Exit(1)
		}
		logger.Debug("✏️ Set field", "field", name, "value", value)
	}

	for _, name := range clearFields {
		if err := cfg.ClearField(name); err != nil {
			logger.Error("❌ Failed to clear field", "field", name, "error", err)
			os.Exit(1)
		}
		logger.Debug("🗑️ Cleared field", "field", name)
	}

	switch emitFormat {
	case "plan":
		showPlan(cfg, resolvePlatform(logger))
	case "json":
		data, err := cfg.MarshalJSONDocument()
		if err != nil {
			logger.Error("❌ Failed to encode config", "error", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	case "toml":
		data, err := cfg.MarshalTOMLDocument()
		if err != nil {
			logger.Error("❌ Failed to encode config", "error", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	default:
		logger.Error("❌ Unknown emit format", "format", emitFormat)
		os.Exit(1)
	}
}

// showPlan displays the two-pass apply plan in human-readable format
func showPlan(cfg *interp.Config, family interp.PlatformFamily) {
	fmt.Printf("profile: %s | platform: %s | allocator backend default: %s\n",
		cfg.Profile,
		family,
		interp.DefaultMemoryAllocatorBackend(family))

	for _, tier := range []interp.Tier{interp.TierPreConfig, interp.TierConfig} {
		fields := cfg.TierFields(tier)
		set := 0
		for _, f := range fields {
			if f.IsSet {
				set++
			}
		}
		fmt.Printf("\n%s pass (%d/%d set):\n", tier, set, len(fields))
		for _, f := range fields {
			if f.IsSet {
				fmt.Printf("  %s = %s\n", f.Name, f.Value)
			}
		}
	}
}
