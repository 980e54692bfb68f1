package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ocflabs/labops/quorum"
)

var rosterFile string
var meeting string

func init() {
	flag.StringVar(&rosterFile, "roster", "roster.yaml", "Attendance roster file")
	flag.StringVar(&meeting, "meeting", "", "Meeting date to tally")
}

func main() {
	flag.Parse()

	if meeting == "" {
		fmt.Fprintln(os.Stderr, "usage: quorum -meeting DATE [-roster FILE]")
		os.Exit(1)
	}

	roster, err := quorum.Load(rosterFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load roster failed: %v\n", err)
		os.Exit(1)
	}

	t, err := roster.Tally(meeting)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tally %s failed: %v\n", meeting, err)
		os.Exit(1)
	}

	fmt.Printf("present (%d): %s\n", len(t.Present), strings.Join(t.Present, ", "))
	fmt.Printf("absent (%d): %s\n", len(t.Absent), strings.Join(t.Absent, ", "))
	if len(t.Guests) > 0 {
		fmt.Printf("guests (%d): %s\n", len(t.Guests), strings.Join(t.Guests, ", "))
	}
	if !t.Quorum {
		fmt.Printf("no quorum: %d present, %d needed\n", len(t.Present), t.Needed)
		os.Exit(1)
	}
	fmt.Println("quorum met")
}
