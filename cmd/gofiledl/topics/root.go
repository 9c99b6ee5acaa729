package topics

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"

	"github.com/OnitiFR/gofiledl/cmd/gofiledl/client"
	"github.com/OnitiFR/gofiledl/common"
	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command, downloading a whole folder
var rootCmd = &cobra.Command{
	Use:   "gofiledl <folder_code> [output_directory]",
	Short: "Gofile folder downloader",
	Long: `gofiledl downloads all files of a Gofile folder

Sample usage:
- gofiledl abc123
- gofiledl abc123 /tmp/downloads
- gofiledl list abc123
	`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		outputDir := client.GlobalConfig.OutputDir
		if len(args) > 1 {
			outputDir = args[1]
		}
		rootDownload(cmd.Context(), args[0], outputDir)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	var err error
	client.GlobalHome, err = homedir.Dir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if err = rootCmd.ExecuteContext(context.Background()); err != nil {
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&client.GlobalCfgFile, "config", "c", "", "config file (default is $HOME/.gofiledl.toml)")

	rootCmd.PersistentFlags().BoolP("trace", "t", false, "show trace messages (debug)")
	rootCmd.PersistentFlags().StringP("filter", "f", "", "only download entries matching this expression (ex: \"size_MB < 100\")")
	rootCmd.PersistentFlags().String("chunk-size", "", "read size while downloading (ex: 1KB, 64KB)")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "show client version")

	setCompletion()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	cfgFile := client.GlobalCfgFile
	if cfgFile == "" {
		cfgFile = path.Clean(client.GlobalHome + "/.gofiledl.toml")
	}

	if rootCmd.PersistentFlags().Lookup("version").Changed {
		fmt.Println(common.ClientVersion)
		os.Exit(0)
	}

	var err error
	client.GlobalConfig, err = NewRootConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	client.GlobalLog = client.NewLog(
		os.Stdout,
		client.GlobalConfig.Trace,
		isatty.IsTerminal(os.Stdout.Fd()),
	)
	client.GlobalLog.Tracef("configuration file '%s'", client.GlobalConfig.ConfigFile)

	client.GlobalAPI = newAPI(client.GlobalConfig)
}

func newAPI(config *client.RootConfig) *client.API {
	api := client.NewAPI(
		config.APIURL,
		config.Token,
		config.WebsiteToken,
		config.FileHost,
	)
	if config.Timeout > 0 {
		api.HTTPClient = &http.Client{Timeout: config.Timeout}
	}
	return api
}

func newFilter(config *client.RootConfig) (*client.Filter, error) {
	if config.Filter == "" {
		return nil, nil
	}
	return client.NewFilter(config.Filter)
}

func rootDownload(ctx context.Context, code string, outputDir string) {
	config := client.GlobalConfig
	logger := client.GlobalLog

	downloader := client.NewDownloader(
		client.GlobalAPI,
		client.NewRetriever(client.GlobalAPI, config.ChunkSize),
		logger,
	)

	var err error
	downloader.Filter, err = newFilter(config)
	if err != nil {
		logger.Failuref("%s", err)
		return
	}

	if config.Swift != nil {
		downloader.Mirror, err = client.NewSwiftMirror(ctx, config.Swift)
		if err != nil {
			logger.Failuref("%s", err)
			return
		}
		logger.Tracef("Swift mirror to container '%s' is OK", config.Swift.Container)
	}

	// a failed run is reported, but does not change the exit status
	_, err = downloader.Run(ctx, code, outputDir)
	if err != nil {
		logger.Failuref("%s", err)
		return
	}

	client.GetExitMessage().Message = fmt.Sprintf("location: %s\n", outputDir)
}
