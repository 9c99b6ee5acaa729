package topics

import (
	"fmt"

	"github.com/OnitiFR/gofiledl/cmd/gofiledl/client"
	"github.com/OnitiFR/gofiledl/common"
	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"
)

var listFlagBasic bool

// listCmd represents the "list" command
var listCmd = &cobra.Command{
	Use:   "list <folder_code>",
	Short: "List files of a folder, without downloading them",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		listFlagBasic, _ = cmd.Flags().GetBool("basic")
		if listFlagBasic {
			client.GetExitMessage().Disable()
		}

		logger := client.GlobalLog
		if listFlagBasic {
			// keep the output clean for scripts
			logger = client.NewLog(cmd.ErrOrStderr(), client.GlobalConfig.Trace, false)
		}

		filter, err := newFilter(client.GlobalConfig)
		if err != nil {
			logger.Failuref("%s", err)
			return
		}

		stop := logger.Spin("requesting folder index…")
		listing, err := client.GlobalAPI.GetContent(cmd.Context(), args[0])
		stop()
		if err != nil {
			logger.Failuref("%s", err)
			return
		}

		entries, err := client.SelectEntries(listing, filter, logger)
		if err != nil {
			logger.Failuref("%s", err)
			return
		}

		if listFlagBasic {
			for _, entry := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Name)
			}
			return
		}

		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No files in this folder.\n")
			return
		}

		logger.Infof("server: %s", listing.ServerHost)
		client.RenderEntryTable(cmd.OutOrStdout(), entries)

		selected := common.FolderListing{Entries: entries}
		logger.Infof("%d files, %s", len(entries), (datasize.ByteSize(selected.TotalSize()) * datasize.B).HR())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("basic", "b", false, "show basic list, without any formating")
}
