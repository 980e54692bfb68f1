package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/lodastack/log"
	"github.com/ocflabs/labops/config"
	"github.com/ocflabs/labops/httpd"
	"github.com/ocflabs/labops/model"
)

func initLog(c config.LogConfig) error {
	dir := c.Dir
	if dir == "" {
		dir = DefaultLogDir
	}
	var err error
	model.LogBackend, err = log.NewFileBackend(dir)
	if err != nil {
		return err
	}
	log.SetLogging(logLevel(c), model.LogBackend)
	if c.Logrotatenum != 0 {
		log.Rotate(c.Logrotatenum, c.Logrotatesize)
	}
	return nil
}

func logLevel(c config.LogConfig) string {
	if c.Level == "" {
		return "INFO"
	}
	return c.Level
}

// serveReport publishes the finished report until the process is
// interrupted. The audit itself never reruns here.
func serveReport(addr string, report *model.Report) error {
	h := httpd.New(addr, report)
	if err := h.Start(); err != nil {
		return err
	}

	terminate := make(chan os.Signal, 1)
	signal.Notify(terminate, syscall.SIGINT, syscall.SIGTERM)
	<-terminate

	return h.Close()
}
