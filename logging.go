// logging.go
package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// setupLogging: 標準出力は表専用なのでログは stderr（out）に出す
func setupLogging(out io.Writer, level string) {
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("log_level", level).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
