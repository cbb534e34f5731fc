// Command axpctl inspects and configures an AXP192 PMIC on a Linux I²C bus.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"axp192-go/errcode"
)

const (
	flagBus       = "bus"
	flagSpeedKHz  = "speed-khz"
	flagWorker    = "worker"
	flagTimeoutMS = "timeout-ms"
	flagDebug     = "debug"
)

func main() {
	a := &axpctl{log: zap.NewNop()}
	err := newApp(a).Run(os.Args)
	_ = a.log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "axpctl:", err)
		os.Exit(errcode.ExitStatus(errcode.Of(err)))
	}
}

func newApp(a *axpctl) *cli.App {
	return &cli.App{
		Name:  "axpctl",
		Usage: "inspect and configure an AXP192 power management IC",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagBus,
				Aliases: []string{"b"},
				Usage:   "I²C bus name or number (empty: first bus)",
				EnvVars: []string{"AXPCTL_BUS"},
			},
			&cli.IntFlag{
				Name:  flagSpeedKHz,
				Value: 400,
				Usage: "bus clock in kHz (0 keeps the adapter default)",
			},
			&cli.BoolFlag{
				Name:  flagWorker,
				Usage: "run transactions on a dedicated bus worker goroutine",
			},
			&cli.IntFlag{
				Name:  flagTimeoutMS,
				Usage: "with --worker, give up on a transaction not started within this many ms (0 waits, max 5000)",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging, including every bus transaction",
			},
		},
		Before: a.before,
		After:  a.after,
		Commands: []*cli.Command{
			{
				Name:   "buses",
				Usage:  "list I²C buses",
				Action: a.buses,
			},
			{
				Name:   "status",
				Usage:  "show input, charger and rail status",
				Action: a.status,
			},
			{
				Name:   "adc",
				Usage:  "read every converter channel",
				Action: a.adc,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "enable-all", Usage: "enable all channels before reading"},
				},
			},
			{
				Name:  "rail",
				Usage: "regulated outputs",
				Subcommands: []*cli.Command{
					{Name: "get", Usage: "show a rail", ArgsUsage: "RAIL", Action: a.railGet},
					{Name: "set", Usage: "set a rail voltage", ArgsUsage: "RAIL MILLIVOLTS", Action: a.railSet},
					{Name: "on", Usage: "enable a rail", ArgsUsage: "RAIL", Action: a.railSwitch(true)},
					{Name: "off", Usage: "disable a rail", ArgsUsage: "RAIL", Action: a.railSwitch(false)},
				},
			},
			{
				Name:  "charge",
				Usage: "Li-ion charger",
				Subcommands: []*cli.Command{
					{Name: "show", Usage: "show charger settings", Action: a.chargeShow},
					{
						Name:   "set",
						Usage:  "write all charger settings in one transaction",
						Action: a.chargeSet,
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "enable", Value: true, Usage: "enable charging"},
							&cli.IntFlag{Name: "target-mv", Value: 4200, Usage: "target voltage: 4100, 4150, 4200 or 4360"},
							&cli.IntFlag{Name: "end-percent", Value: 10, Usage: "termination current: 10 or 15 %"},
							&cli.IntFlag{Name: "current-ma", Value: 100, Usage: "charge current in mA (100..1320)"},
						},
					},
				},
			},
			{
				Name:   "pek",
				Usage:  "show power key timings",
				Action: a.pekShow,
			},
			{
				Name:   "coulomb",
				Usage:  "show coulomb counter",
				Action: a.coulomb,
			},
			{
				Name:  "profile",
				Usage: "apply a JSON settings profile",
				Subcommands: []*cli.Command{
					{
						Name:      "apply",
						Usage:     "validate and apply a profile",
						ArgsUsage: "FILE",
						Action:    a.profileApply,
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "dry-run", Usage: "validate only"},
						},
					},
				},
			},
			{
				Name:  "field",
				Usage: "raw register map access",
				Subcommands: []*cli.Command{
					{Name: "list", Usage: "list named fields", Action: a.fieldList},
					{Name: "read", Usage: "read a field", ArgsUsage: "NAME", Action: a.fieldRead},
					{Name: "write", Usage: "write a field", ArgsUsage: "NAME VALUE", Action: a.fieldWrite},
				},
			},
			{
				Name:   "poweroff",
				Usage:  "switch the PMIC off (all rails except LDO1)",
				Action: a.powerOff,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "confirm"},
				},
			},
		},
	}
}
