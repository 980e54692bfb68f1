// Package quorum tallies board-meeting attendance from a YAML roster
// file and decides whether quorum was met.
package quorum

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/ocflabs/labops/common"

	yaml "gopkg.in/yaml.v3"
)

var (
	ErrEmptyBoard     = errors.New("roster lists no directors")
	ErrMeetingUnknown = errors.New("no such meeting in roster")
)

// Roster is the attendance file: the current board plus, per meeting
// date, who showed up.
type Roster struct {
	Directors []string            `yaml:"directors"`
	Meetings  map[string][]string `yaml:"meetings"`
}

// Load reads and parses a roster file.
func Load(path string) (*Roster, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse parses roster YAML.
func Parse(b []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse roster: %v", err)
	}
	if len(r.Directors) == 0 {
		return nil, ErrEmptyBoard
	}
	return &r, nil
}

// Tally is the outcome for one meeting.
type Tally struct {
	Present []string
	Absent  []string
	Guests  []string
	Needed  int
	Quorum  bool
}

// Tally computes attendance for the named meeting. Quorum is a strict
// majority of the board; guests count for nothing.
func (r *Roster) Tally(meeting string) (*Tally, error) {
	attendees, ok := r.Meetings[meeting]
	if !ok {
		return nil, ErrMeetingUnknown
	}

	t := &Tally{Needed: len(r.Directors)/2 + 1}
	for _, d := range r.Directors {
		if _, there := common.ContainString(attendees, d); there {
			t.Present = append(t.Present, d)
		} else {
			t.Absent = append(t.Absent, d)
		}
	}
	for _, a := range attendees {
		if _, board := common.ContainString(r.Directors, a); !board {
			t.Guests = append(t.Guests, a)
		}
	}
	t.Quorum = len(t.Present) >= t.Needed
	return t, nil
}
