package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DRuggeri/umbctl/device"
	"github.com/DRuggeri/umbctl/umb"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	logger.Info("Exercising device package")

	ifname := "umb0"
	if len(os.Args) > 1 {
		ifname = os.Args[1]
	}

	client, err := device.New(logger)
	if err != nil {
		logger.Error("Failed to create device client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	info, err := client.GetInfo(ifname)
	if err != nil {
		logger.Error("Failed to fetch info", "interface", ifname, "error", err)
		os.Exit(1)
	}
	fmt.Print(umb.FormatInfo(ifname, info))

	param, err := client.GetParameters(ifname)
	if err != nil {
		logger.Error("Failed to fetch parameters", "interface", ifname, "error", err)
		os.Exit(1)
	}
	logger.Info("Current parameters",
		"apn", umb.DecodeString(param.APN[:], int(param.APNLen)/2),
		"roaming", param.Roaming)
}
