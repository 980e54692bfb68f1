package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/ocflabs/labops/csr"
)

var cn string
var bits int
var sans string
var outDir string

func init() {
	flag.StringVar(&cn, "cn", "", "Common name of the certificate")
	flag.IntVar(&bits, "bits", csr.DefaultBits, "RSA key size")
	flag.StringVar(&sans, "san", "", "Comma separated additional DNS names")
	flag.StringVar(&outDir, "out", ".", "Directory to write the key and CSR to")
}

func main() {
	flag.Parse()

	if cn == "" {
		fmt.Fprintln(os.Stderr, "usage: gencsr -cn NAME [-bits N] [-san a,b] [-out DIR]")
		os.Exit(1)
	}

	var dnsNames []string
	if sans != "" {
		dnsNames = strings.Split(sans, ",")
	}

	keyPEM, csrPEM, err := csr.Generate(cn, bits, dnsNames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate CSR failed: %v\n", err)
		os.Exit(1)
	}

	keyPath := filepath.Join(outDir, cn+".key")
	csrPath := filepath.Join(outDir, cn+".csr")
	for _, p := range []string{keyPath, csrPath} {
		if _, err := os.Stat(p); err == nil {
			fmt.Fprintf(os.Stderr, "%s already exists, not overwriting\n", p)
			os.Exit(1)
		}
	}

	if err := ioutil.WriteFile(keyPath, keyPEM, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "write %s failed: %v\n", keyPath, err)
		os.Exit(1)
	}
	if err := ioutil.WriteFile(csrPath, csrPEM, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s failed: %v\n", csrPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s and %s\n", keyPath, csrPath)
}
