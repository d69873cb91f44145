package config

import (
	"flag"
	"os"
	"time"

	"github.com/osadchiy/chatfiles/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-u string   base URL of the public distribution endpoint
//	-o string   directory to save downloads into
//	-b string   path of the local database file
//	-t int      request timeout in seconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-o", "-b", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DistributionBaseURL, "u", cfg.DistributionBaseURL, "base URL of the distribution endpoint")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "directory to save downloads into")
	fs.StringVar(&cfg.LocalDBPath, "b", cfg.LocalDBPath, "path of the local database file")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
