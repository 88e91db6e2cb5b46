package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/Mavwarf/iconkit/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	size := 0
	configPath := ""
	outDir := ""

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--size", "-s":
			if i+1 < len(args) {
				v, err := strconv.Atoi(args[i+1])
				if err != nil || v < 1 || v > 8192 {
					fmt.Fprintf(os.Stderr, "Error: size must be a number between 1 and 8192\n")
					os.Exit(1)
				}
				size = v
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --size requires a value in pixels\n")
				os.Exit(1)
			}
		case "--out", "-o":
			if i+1 < len(args) {
				outDir = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --out requires a directory\n")
				os.Exit(1)
			}
		case "--config", "-c":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --config requires a file path\n")
				os.Exit(1)
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "list", "-l", "--list":
		listTargets(configPath)
	case "all":
		runAll(configPath, outDir, size)
	default:
		runTarget(filtered[0], configPath, outDir, size)
	}
}

func runTarget(name, configPath, outDir string, size int) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tgt, err := config.Resolve(cfg, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'iconkit list' to see available targets.\n")
		os.Exit(1)
	}

	if err := generate(name, tgt, cfg, outDir, size); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runAll draws the placeholder logo first when no source image exists yet,
// then builds the icon from whatever source is on disk.
func runAll(configPath, outDir string, size int) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	iconTgt, err := config.Resolve(cfg, "icon")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src := outputPath(iconTgt.Source, outDir, cfg)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		logoTgt, err := config.Resolve(cfg, "logo")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := generate("logo", logoTgt, cfg, outDir, size); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := generate("icon", iconTgt, cfg, outDir, size); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listTargets(configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(cfg.Targets))
	for name := range cfg.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := cfg.Targets[name]
		fmt.Printf("  %-12s %-12s -> %s\n", name, t.Kind, strings.Join(t.Outputs, ", "))
	}
}

func printVersion() {
	fmt.Printf("iconkit %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("iconkit %s - Generate app icon assets from a logo image\n", version)
	fmt.Println(`
Usage:
  iconkit [options] <target>

Options:
  --size, -s <px>        Override canvas size (default: config or 1024)
  --out, -o <dir>        Prefix for relative output paths
  --config, -c <path>    Path to iconkit.json

Targets:
  icon                   Composite the source logo onto an opaque background
  logo                   Draw the placeholder whale mark
  all                    Run logo (if no source exists yet), then icon
  <name>                 Any target defined in iconkit.json

Commands:
  list, -l, --list       List targets from the loaded config
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>              (explicit)
  2. iconkit.json next to binary         (portable)
  3. ~/.config/iconkit/iconkit.json      (user default)
  4. built-in defaults                   (no setup needed)

Examples:
  iconkit icon                     1024px icon.png + adaptive-icon.png
  iconkit -s 512 icon              Same outputs at 512px
  iconkit logo                     Placeholder whale mark at assets/logo.png
  iconkit -o build all             Generate everything under build/`)
}
