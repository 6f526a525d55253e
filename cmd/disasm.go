package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <rom>",
	Short: "Disassemble a ROM to stdout",
	Args:  cobra.ExactArgs(1),
	Run:   disassemble,
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}

func disassemble(cmd *cobra.Command, args []string) {
	logger := createLogger()

	machine, err := loadMachine(args[0])
	if err != nil {
		logger.Fatal(err.Error())
	}

	machine.Disassemble(os.Stdout)
}
