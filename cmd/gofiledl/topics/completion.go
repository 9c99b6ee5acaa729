package topics

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the "completion" command
var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate bash completion script",
	Long: `To load completion, run:

. <(gofiledl completion)

To configure your bash shell to load completions for each session, add
the previous line to your ~/.bashrc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func setCompletion() {
	rootCmd.BashCompletionFunction = bashCompletionFunc
	rootCmd.PersistentFlags().SetAnnotation("chunk-size", cobra.BashCompCustom, []string{"__internal_chunk_sizes"})
}
