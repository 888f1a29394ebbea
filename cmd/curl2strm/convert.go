package main

import (
	"fmt"

	"github.com/curl2strm/curl2strm/pkg/clipboard"
	"github.com/curl2strm/curl2strm/pkg/config"
	"github.com/curl2strm/curl2strm/pkg/fileutil"
	"github.com/curl2strm/curl2strm/pkg/logger"
	"github.com/curl2strm/curl2strm/pkg/parser"
	"github.com/curl2strm/curl2strm/pkg/render"
)

// runConvert drives one conversion: resolve input, parse, filter,
// render, write
func runConvert(raw string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source := "curl"
	if raw == "" {
		raw, err = clipboard.Read()
		if err != nil {
			return err
		}
		source = "clipboard"
		log.Infof("read curl command from clipboard")
	}

	result, err := parser.NewCurlParser().Parse(raw)
	if err != nil {
		return err
	}
	result.Metadata.Source = source
	log.Debugf("conversion %s: url=%s headers=%d", result.Metadata.ID, result.Request.URL, len(result.Request.Headers))

	filtered := cfg.Policy().Filter(result.Request.Headers, opts.allHeaders)
	if len(filtered) == 0 && len(result.Request.Headers) > 0 && !opts.allHeaders {
		log.Warnf("no allow-listed headers found; use --all-headers to keep all %d", len(result.Request.Headers))
	}
	result.Request.Headers = filtered

	base := fileutil.SanitizeBaseName(firstNonEmpty(opts.title, opts.output, "output"))

	dialect := render.DialectNone
	if opts.ytdlp {
		dialect, err = render.ParseDialect(firstNonEmpty(opts.scriptFormat, cfg.ScriptFormat, defaultScriptFormat()))
		if err != nil {
			return err
		}
	}

	out, err := render.Render(render.RenderRequest{
		Request: result.Request,
		Title:   base,
		Dialect: dialect,
	})
	if err != nil {
		return err
	}

	fmt.Println(out.Descriptor)

	strmPath := base + ".strm"
	if opts.dryRun {
		log.Infof("dry-run: would write %s", strmPath)
	} else {
		if err := fileutil.WriteText(strmPath, out.Descriptor); err != nil {
			return err
		}
		log.Infof(".strm file written: %s", strmPath)
	}

	if out.Script != "" {
		scriptPath := base + dialect.Ext()
		if opts.dryRun {
			log.Infof("dry-run: would write %s", scriptPath)
		} else {
			if err := fileutil.WriteScript(scriptPath, out.Script, dialect.Executable()); err != nil {
				return err
			}
			log.Infof("yt-dlp script written: %s", scriptPath)
		}
	}

	return nil
}

// loadConfig resolves the config file and applies logging settings
func loadConfig() (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(firstNonEmpty(opts.logLevel, cfg.LogLevel))
	if err != nil {
		return nil, err
	}
	logger.SetGlobalLevel(level)
	logger.SetColored(!opts.noColor && !cfg.NoColor)

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
