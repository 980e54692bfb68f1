package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ocflabs/labops/config"
	"github.com/ocflabs/labops/directory"
)

const DefaultConfigFile = "/etc/labops/labops.conf"

var configFile string
var user string
var mail string

func init() {
	flag.StringVar(&configFile, "config", DefaultConfigFile, "Set the config file")
	flag.StringVar(&user, "user", "", "Account to update")
	flag.StringVar(&mail, "mail", "", "New mail address")
}

func main() {
	flag.Parse()

	if user == "" || mail == "" || !strings.Contains(mail, "@") {
		fmt.Fprintln(os.Stderr, "usage: emailupdate -user USER -mail ADDR")
		os.Exit(1)
	}

	if err := config.ParseConfig(configFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "parse config file error: %v\n", err)
		os.Exit(1)
	}

	dirConf := config.C.DirectoryConf
	if dirConf.Server == "" {
		dirConf.Server = directory.DefaultServer
	}

	sess, err := directory.Open(dirConf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open directory failed: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	oldMail, err := sess.ReplaceMail(user, mail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "update mail of %s failed: %v\n", user, err)
		os.Exit(1)
	}
	fmt.Printf("updated mail of %s: %s -> %s\n", user, oldMail, mail)
}
