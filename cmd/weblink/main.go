package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ocflabs/labops/weblink"
)

var user string
var home string
var webRoot string

func init() {
	flag.StringVar(&user, "user", "", "Account to link")
	flag.StringVar(&home, "home", "", "Home directory (default /home/USER)")
	flag.StringVar(&webRoot, "webroot", weblink.DefaultWebRoot, "Web directory root")
}

func main() {
	flag.Parse()

	if user == "" {
		fmt.Fprintln(os.Stderr, "usage: weblink -user USER [-home DIR] [-webroot DIR]")
		os.Exit(1)
	}
	if home == "" {
		home = filepath.Join("/home", user)
	}

	target := weblink.Target(webRoot, user)
	if err := weblink.Ensure(home, target); err != nil {
		fmt.Fprintf(os.Stderr, "link web directory failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s -> %s\n", filepath.Join(home, "public_html"), target)
}
