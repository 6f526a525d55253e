package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chit8/chip8"
	"chit8/frontend"
)

var runCmd = &cobra.Command{
	Use:   "run <rom>",
	Short: "Load a ROM and start the emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runEmulator,
}

var (
	speed      int
	scale      int
	turbo      bool
	scriptFile string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVarP(&speed, "speed", "s", 12, "instructions per 60Hz frame")
	runCmd.Flags().IntVar(&scale, "scale", 10, "window scale factor")
	runCmd.Flags().BoolVar(&turbo, "turbo", false, "run unpaced at full speed")
	runCmd.Flags().StringVar(&scriptFile, "script", "", "command script to run before starting")

	viper.BindPFlag("speed", runCmd.Flags().Lookup("speed"))
	viper.BindPFlag("scale", runCmd.Flags().Lookup("scale"))
	viper.BindPFlag("turbo", runCmd.Flags().Lookup("turbo"))
}

func runEmulator(cmd *cobra.Command, args []string) {
	logger := createLogger()

	machine, err := loadMachine(args[0])
	if err != nil {
		logger.Fatal(err.Error())
	}

	fe, err := frontend.New(machine, logger, frontend.Config{
		Scale: viper.GetInt("scale"),
		Speed: viper.GetInt("speed"),
		Turbo: viper.GetBool("turbo"),
	})
	if err != nil {
		logger.Fatal(err.Error())
	}

	if scriptFile != "" {
		if err := frontend.RunScript(machine, scriptFile); err != nil {
			logger.Fatal(err.Error())
		}
	}

	logger.Info("Starting emulation", log.String("rom", args[0]))
	if err := fe.Run(app.Context()); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal(err.Error())
	}
}

// loadMachine builds a machine with the ROM file loaded at 0x200.
func loadMachine(romFile string) (*chip8.CPU, error) {
	rom, err := os.ReadFile(romFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read rom: %w", err)
	}

	machine := chip8.New()
	if err := machine.LoadROM(rom); err != nil {
		return nil, err
	}
	return machine, nil
}
