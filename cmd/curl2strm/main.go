// Command curl2strm converts a captured curl invocation into a Kodi
// .strm stream descriptor and an optional yt-dlp download script.
package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/curl2strm/curl2strm/pkg/config"
	"github.com/curl2strm/curl2strm/pkg/logger"
)

var log = logger.New("curl2strm")

var opts struct {
	title        string
	output       string
	ytdlp        bool
	allHeaders   bool
	dryRun       bool
	scriptFormat string
	configPath   string
	logLevel     string
	noColor      bool
}

var rootCmd = &cobra.Command{
	Use:   "curl2strm [curl-command]",
	Short: "Convert a curl command to a Kodi .strm file and yt-dlp script",
	Long: `curl2strm parses a curl command (typically copied from the browser's
"Copy as cURL"), keeps the headers a stream host needs, and writes a Kodi
.strm descriptor plus, optionally, a yt-dlp script reproducing the request.

With no argument the curl command is read from the clipboard.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := ""
		if len(args) == 1 {
			raw = args[0]
		}
		return runConvert(raw)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&opts.title, "title", "t", "", "stream title, used as base output name")
	f.StringVarP(&opts.output, "output", "o", "", "base output name (ignored if --title is set)")
	f.BoolVar(&opts.ytdlp, "yt-dlp", false, "also write a yt-dlp download script")
	f.BoolVar(&opts.allHeaders, "all-headers", false, "include all headers, not just the allow-list")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print what would be written without creating files")
	f.StringVar(&opts.scriptFormat, "script-format", "", "script dialect: sh, bat or ps1 (default: platform)")
	f.StringVar(&opts.configPath, "config", "", "config file (default: ~/"+config.DefaultFileName+")")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored log output")
}

// defaultScriptFormat picks the script dialect matching the platform
func defaultScriptFormat() string {
	if runtime.GOOS == "windows" {
		return "bat"
	}
	return "sh"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
