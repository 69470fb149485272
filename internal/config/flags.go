package config

import (
	"flag"
	"io"
)

// parses client CLI flags and applies them over cfg
func ParseClientFlags(args []string, cfg *ClientConfig) (ClientFlags, error) {
	fs := flag.NewFlagSet("foodmap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	api := fs.String("api", "", "base URL of the foodmap API")
	lang := fs.String("lang", "", "interface language (ko, en)")
	logFile := fs.String("log", "", "path of the log file")

	if err := fs.Parse(args); err != nil {
		return ClientFlags{}, err
	}

	flags := ClientFlags{APIURL: *api, Language: *lang, LogFile: *logFile}

	if flags.APIURL != "" {
		cfg.APIURL = flags.APIURL
	}

	if flags.Language != "" {
		cfg.Language = flags.Language
	}

	if flags.LogFile != "" {
		cfg.LogFile = flags.LogFile
	}

	return flags, cfg.normalize()
}
