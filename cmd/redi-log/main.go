package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/rediwo/redi/runtime"

	"github.com/rediwo/redi-log/config"
	"github.com/rediwo/redi-log/logger"
	_ "github.com/rediwo/redi-log/modules/log" // Import log module
)

const (
	version = "0.1.0"
	usage   = `RediLog CLI - console and file logging for scripts

Usage:
  redi-log <command> [flags]

Commands:
  run       Execute a JavaScript file with require('redi/log') available
  version   Show version information

Flags:
  --config         Path to a JSON5 config file
  --console-level  Minimum console severity: trace|info|warning|error|fatal
  --file-level     Minimum file severity: trace|info|warning|error|fatal
  --mode           Build mode: debug|release|dist (default: debug)
  --export         Write the buffered file log here on exit (must end with .txt)
  --color          Color console lines by severity
  --help           Show help message

Environment:
  REDI_LOG_CONSOLE_LEVEL, REDI_LOG_FILE_LEVEL, REDI_LOG_MODE,
  REDI_LOG_EXPORT_PATH, REDI_LOG_COLOR override the config file;
  flags override the environment.

Examples:
  redi-log run app.js
  redi-log run app.js --file-level=warning --export=session.txt
  redi-log run app.js --config=./log.json5 --mode=release
`
)

// cli reports the tool's own problems on stderr
var cli = logger.New(logger.Options{Output: os.Stderr})

func main() {
	var (
		configPath   string
		consoleLevel string
		fileLevel    string
		mode         string
		exportPath   string
		color        bool
		help         bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&consoleLevel, "console-level", "", "Minimum console severity")
	flag.StringVar(&fileLevel, "file-level", "", "Minimum file severity")
	flag.StringVar(&mode, "mode", "", "Build mode")
	flag.StringVar(&exportPath, "export", "", "Export path for the file log")
	flag.BoolVar(&color, "color", false, "Color console output")
	flag.BoolVar(&help, "help", false, "Show help message")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(0)
	}

	command := os.Args[1]

	if command == "version" {
		fmt.Printf("RediLog CLI v%s\n", version)
		os.Exit(0)
	}

	if command == "help" || command == "--help" || command == "-h" {
		flag.Usage()
		os.Exit(0)
	}

	flag.CommandLine.Parse(os.Args[2:])
	if help {
		flag.Usage()
		os.Exit(0)
	}

	var scriptPath string
	switch command {
	case "run":
		if len(flag.Args()) < 1 {
			fatal("JavaScript file path required\nUsage: redi-log run <script.js>")
		}
		scriptPath = flag.Arg(0)
		// flags may also follow the script path
		flag.CommandLine.Parse(flag.Args()[1:])
	default:
		fatal("Unknown command: %s\n\nRun 'redi-log --help' for usage", command)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fatal("%v", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv(config.NewLoader(config.EnvPrefix))

	// Only flags given on the command line override
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "console-level":
			cfg.ConsoleLevel = consoleLevel
		case "file-level":
			cfg.FileLevel = fileLevel
		case "mode":
			cfg.Mode = mode
		case "export":
			cfg.ExportPath = exportPath
		case "color":
			cfg.Color = color
		}
	})

	os.Exit(runScript(scriptPath, cfg))
}

func runScript(scriptPath string, cfg config.Config) int {
	opts, err := cfg.Options()
	if err != nil {
		fatal("Invalid configuration: %v", err)
	}

	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		fatal("Script file not found: %s", scriptPath)
	}

	absPath, err := filepath.Abs(scriptPath)
	if err != nil {
		fatal("Failed to get absolute path: %v", err)
	}

	core := logger.New(opts)
	logger.SetDefault(core)

	executor := runtime.NewExecutor()
	exitCode, err := executor.Execute(&runtime.Config{
		ScriptPath: absPath,
		BasePath:   filepath.Dir(absPath),
		Version:    version,
	})
	if err != nil {
		cli.Console().Error("Script execution failed: %v", err)
		if exitCode == 0 {
			exitCode = 1
		}
	}

	// Export at shutdown, after the script had its chance to export itself.
	// A script that already drained the buffer keeps its file.
	if cfg.ExportPath != "" && !drained(core) {
		if err := core.ExportFile(cfg.ExportPath); err != nil {
			cli.Console().Error("Failed to export file log: %v", err)
			if exitCode == 0 {
				exitCode = 1
			}
		}
	}

	return exitCode
}

// drained reports whether the script exported and logged nothing to the file
// sink afterwards
func drained(core *logger.Core) bool {
	buf := core.Buffer()
	return buf.Exports() > 0 && buf.Len() == 0
}

func fatal(format string, args ...any) {
	report(2, format, args...)
	os.Exit(1)
}

// report logs a FATAL line tagged with the location skip frames above it
func report(skip int, format string, args ...any) {
	file, line := "???", 0
	if _, path, l, ok := goruntime.Caller(skip); ok {
		file, line = filepath.Base(path), l
	}
	cli.Log(logger.SinkConsole, logger.Fatal, file, line, format, args...)
}
