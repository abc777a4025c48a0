package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rolltok",
	Short: "Piano roll and token encoder for MIDI clips",
	Long:  `Converts MIDI note events into fixed-resolution piano rolls and token sequences for training sequence models.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
