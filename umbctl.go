// umbctl reads and sets the connection parameters of an MBIM network
// interface and reports its status.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DRuggeri/umbctl/config"
	"github.com/DRuggeri/umbctl/device"
	"github.com/DRuggeri/umbctl/umb"
	"github.com/alecthomas/kingpin/v2"
)

// Exit codes, one per error class.
const (
	exitOK       = 0
	exitUsage    = 1
	exitDevice   = 2 // socket, set-parameters or device-not-found failure
	exitValidate = 3 // get-info failure or field-too-long validation
)

var (
	app        = kingpin.New("umbctl", "Control utility for MBIM network interfaces.")
	verbose    = app.Flag("verbose", "Log verbosely and report status after applying parameters.").Short('v').Bool()
	batchFile  = app.Flag("file", "Read parameters from a batch file.").Short('f').PlaceHolder("CONFIG-FILE").String()
	configFile = app.Flag("config", "Tool configuration file.").Short('c').PlaceHolder("YAML-FILE").String()
	profile    = app.Flag("profile", "Apply a named parameter profile from the tool configuration.").Short('P').String()
	ifname     = app.Arg("interface", "MBIM network interface name (default from the tool configuration).").String()
	parameters = app.Arg("parameter", "Parameters to apply, as name value pairs or name=value.").Strings()
)

func main() {
	app.UsageWriter(os.Stderr)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "umbctl: %s\n", err)
		os.Exit(exitUsage)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "umbctl: %s\n", err)
		os.Exit(exitUsage)
	}

	name, err := resolveInterface(*ifname, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "umbctl: %s\n", err)
		os.Exit(exitUsage)
	}

	report := *verbose || cfg.Verbose
	level := slog.LevelWarn
	if report {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("operation", "main")

	os.Exit(run(cfg, name, report, log))
}

// resolveInterface picks the interface argument over the configured
// default; one of the two must name an interface.
func resolveInterface(arg string, cfg *config.Config) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if cfg.Interface != "" {
		return cfg.Interface, nil
	}
	return "", errors.New("no interface named (argument or configuration)")
}

// run performs the full requested operation and translates every failure
// into a diagnostic plus an exit code. No partial success is reported:
// either the report or apply-then-report path completes, or the first
// failure aborts it.
func run(cfg *config.Config, ifname string, report bool, log *slog.Logger) int {
	var tokens []string
	if *profile != "" {
		p, err := cfg.Profile(*profile)
		if err != nil {
			return fail(err, exitUsage)
		}
		tokens = append(tokens, splitTokens(p)...)
	}
	if *batchFile != "" {
		lines, err := config.ReadBatchFile(*batchFile)
		if err != nil {
			return fail(err, exitDevice)
		}
		for _, line := range lines {
			tokens = append(tokens, splitTokens(line)...)
		}
	}
	tokens = append(tokens, splitTokens(*parameters)...)

	client, err := device.New(log)
	if err != nil {
		return fail(err, exitDevice)
	}
	defer client.Close()

	if len(tokens) > 0 {
		param, err := client.GetParameters(ifname)
		if err != nil {
			return fail(err, exitDevice)
		}
		if err := param.Apply(tokens); err != nil {
			if errors.Is(err, umb.ErrTooLong) {
				return fail(err, exitValidate)
			}
			return fail(err, exitDevice)
		}
		log.Debug("applying parameters", "interface", ifname, "tokens", len(tokens))
		if err := client.SetParameters(ifname, param); err != nil {
			return fail(err, exitDevice)
		}
	}

	if len(tokens) == 0 || report {
		info, err := client.GetInfo(ifname)
		if err != nil {
			if errors.Is(err, device.ErrNoDevice) {
				return fail(err, exitDevice)
			}
			return fail(err, exitValidate)
		}
		fmt.Print(umb.FormatInfo(ifname, info))
	}

	return exitOK
}

func fail(err error, code int) int {
	fmt.Fprintf(os.Stderr, "umbctl: %s\n", err)
	return code
}

// splitTokens normalizes name=value arguments into name/value token pairs
// for the parameter builder.
func splitTokens(args []string) []string {
	tokens := make([]string, 0, len(args))
	for _, arg := range args {
		if name, value, ok := strings.Cut(arg, "="); ok {
			tokens = append(tokens, name, value)
			continue
		}
		tokens = append(tokens, arg)
	}
	return tokens
}
