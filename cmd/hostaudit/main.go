package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/lodastack/log"
	"github.com/ocflabs/labops/audit"
	"github.com/ocflabs/labops/config"
	"github.com/ocflabs/labops/directory"
	"github.com/ocflabs/labops/model"
	"github.com/ocflabs/labops/resolver"
)

// Command line defaults
const (
	DefaultConfigFile = "/etc/labops/labops.conf"
	DefaultLogDir     = "/var/log/labops"
)

// Command line parameters
var configFile string
var listenAddr string

// These variables are populated via the Go linker.
var (
	version   = "0"
	commit    = "unknown"
	branch    = "unknown"
	buildtime = "unknown"
)

func init() {
	flag.StringVar(&configFile, "config", DefaultConfigFile, "Set the config file")
	flag.StringVar(&listenAddr, "listen", "", "Serve the finished report on this address instead of exiting")
}

func main() {
	flag.Parse()

	// Missing config file is fine, the lab constants are compiled in.
	if err := config.ParseConfig(configFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "parse config file error: %v\n", err)
		os.Exit(1)
	}

	if err := initLog(config.C.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "failed to new log backend: %v\n", err)
		os.Exit(1)
	}

	code := run()
	model.LogBackend.Flush()
	os.Exit(code)
}

func run() int {
	logger := log.New(logLevel(config.C.LogConf), "hostaudit", model.LogBackend)
	logger.Printf("hostaudit starting, version %s, branch %s, commit %s", version, branch, commit)

	dirConf := config.C.DirectoryConf
	if dirConf.Server == "" {
		dirConf.Server = directory.DefaultServer
	}

	sess, err := directory.Open(dirConf)
	if err != nil {
		logger.Errorf("open directory failed: %v", err)
		fmt.Fprintf(os.Stderr, "open directory failed: %v\n", err)
		return 1
	}
	defer sess.Close()

	res, err := resolver.New()
	if err != nil {
		logger.Errorf("init resolver failed: %v", err)
		fmt.Fprintf(os.Stderr, "init resolver failed: %v\n", err)
		return 1
	}

	a := audit.New(auditConfig(), os.Stdout)
	report, err := a.Run(sess, res)
	if err != nil {
		logger.Errorf("audit failed: %v", err)
		fmt.Fprintf(os.Stderr, "audit failed: %v\n", err)
		return 1
	}
	logger.Printf("audit done, report %s, %d violations", report.ID, len(report.Violations))

	if listenAddr != "" {
		if err := serveReport(listenAddr, report); err != nil {
			logger.Errorf("serve report failed: %v", err)
			return 1
		}
	}

	if report.Clean() {
		return 0
	}
	return 1
}

// auditConfig starts from the compiled-in lab constants and lets the
// config file override each one.
func auditConfig() audit.Config {
	conf := audit.DefaultConfig()
	if base := config.C.DirectoryConf.HostBase; base != "" {
		conf.HostBase = base
	}
	c := config.C.AuditConf
	if c.Domain != "" {
		conf.Domain = c.Domain
	}
	if ip := net.ParseIP(c.StaffVMLow); ip != nil {
		conf.StaffVMLow = ip
	}
	if ip := net.ParseIP(c.StaffVMHigh); ip != nil {
		conf.StaffVMHigh = ip
	}
	return conf
}
