// Package audit checks every host entry in the directory against the
// lab's consistency rules: type validity, MAC and IP uniqueness,
// staff-VM range membership, forward and reverse DNS agreement, and
// leftover legacy attributes.
package audit

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/ocflabs/labops/common"
	"github.com/ocflabs/labops/model"
)

// Fixed lab constants. Config may override them, the defaults match
// the production directory.
const (
	DefaultHostBase    = "ou=Hosts,dc=OCF,dc=Berkeley,dc=EDU"
	DefaultDomain      = "ocf.berkeley.edu"
	DefaultStaffVMLow  = "169.229.226.200"
	DefaultStaffVMHigh = "169.229.226.252"
)

const (
	highlight = "\x1b[1;31m"
	reset     = "\x1b[0m"
)

// Directory is the slice of the directory client the auditor needs.
type Directory interface {
	Hosts(base string) ([]model.Host, error)
}

// Resolver is the slice of the DNS client the auditor needs.
type Resolver interface {
	LookupA(fqdn string) ([]net.IP, error)
	LookupPTR(ip net.IP) ([]string, error)
}

// Config fixes the subtree, domain and staff-VM range for a run.
type Config struct {
	HostBase    string
	Domain      string
	StaffVMLow  net.IP
	StaffVMHigh net.IP
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		HostBase:    DefaultHostBase,
		Domain:      DefaultDomain,
		StaffVMLow:  net.ParseIP(DefaultStaffVMLow),
		StaffVMHigh: net.ParseIP(DefaultStaffVMHigh),
	}
}

// Auditor holds the fixed configuration of one audit. The duplicate
// indices live inside Run, so one Auditor value can run repeatedly
// without runs seeing each other's state.
type Auditor struct {
	conf Config
	out  io.Writer
}

// New returns an auditor printing findings to out.
func New(conf Config, out io.Writer) *Auditor {
	return &Auditor{conf: conf, out: out}
}

// run carries the per-invocation state: the report being built and
// the first-seen indices used for duplicate detection.
type run struct {
	res     Resolver
	rep     *model.Report
	out     io.Writer
	seenMAC map[string]string
	seenIP  map[string]string
}

// Run fetches all hosts and evaluates every rule on every host, in
// directory order. Only the directory fetch can fail; everything a
// rule finds becomes a report entry, printed as encountered.
func (a *Auditor) Run(dir Directory, res Resolver) (*model.Report, error) {
	hosts, err := dir.Hosts(a.conf.HostBase)
	if err != nil {
		return nil, err
	}

	r := &run{
		res:     res,
		rep:     &model.Report{ID: common.GenUUID(), GeneratedAt: time.Now()},
		out:     a.out,
		seenMAC: make(map[string]string),
		seenIP:  make(map[string]string),
	}
	for _, h := range hosts {
		a.checkHost(r, h)
	}
	return r.rep, nil
}

func (r *run) report(cn, format string, args ...interface{}) {
	v := r.rep.Add(cn, format, args...)
	fmt.Fprintf(r.out, "%s%s%s\n", highlight, v, reset)
}

func (a *Auditor) checkHost(r *run, h model.Host) {
	if !model.RecognizedType(h.Type) {
		r.report(h.CN, "type %s is not recognized", h.Type)
	}

	if h.MAC != "" {
		if h.Type != model.TypeDesktop {
			r.report(h.CN, "has a MAC address but is not a desktop")
		} else {
			mac := strings.ToLower(h.MAC)
			if first, ok := r.seenMAC[mac]; ok {
				r.report(h.CN, "has the same MAC address as %s", first)
			} else {
				r.seenMAC[mac] = h.CN
			}
		}
	} else if h.Type == model.TypeDesktop {
		r.report(h.CN, "has no MAC address but is a desktop")
	}

	if h.IP == nil {
		r.report(h.CN, "has no valid IP address")
	} else {
		in := inRange(h.IP, a.conf.StaffVMLow, a.conf.StaffVMHigh)
		if h.Type == model.TypeStaffVM && !in {
			r.report(h.CN, "is in staffvm type but not in staffvm IP range")
		}
		if h.Type != model.TypeStaffVM && in {
			r.report(h.CN, "is in staffvm IP range but not in staffvm type")
		}
	}

	fqdn := h.CN + "." + a.conf.Domain + "."
	ips, err := r.res.LookupA(fqdn)
	if err != nil || len(ips) == 0 {
		r.report(h.CN, "has no A record in DNS")
	} else {
		ip := ips[0]
		if first, ok := r.seenIP[ip.String()]; ok {
			r.report(h.CN, "has the same IP address as %s", first)
		} else {
			r.seenIP[ip.String()] = h.CN
		}
		if h.IP != nil && !ip.Equal(h.IP) {
			r.report(h.CN, "ip mismatch: %s in LDAP but %s in DNS", h.IP, ip)
		}
	}

	if h.IP != nil {
		names, err := r.res.LookupPTR(h.IP)
		if err != nil || len(names) == 0 {
			r.report(h.CN, "has no reverse DNS")
		} else if !strings.EqualFold(names[0], fqdn) {
			r.report(h.CN, "has bad reverse DNS %s, expected %s", names[0], fqdn)
		}
	}

	for _, v := range h.DNSA {
		r.report(h.CN, "has legacy dnsA record %s, please remove it manually", v)
	}
	for _, v := range h.DNSCname {
		r.report(h.CN, "has legacy dnsCname record %s, please remove it manually", v)
	}
}

// inRange reports whether ip lies in [low, high], boundaries included.
func inRange(ip, low, high net.IP) bool {
	v, l, h := ip.To4(), low.To4(), high.To4()
	if v == nil || l == nil || h == nil {
		return false
	}
	return bytes.Compare(v, l) >= 0 && bytes.Compare(v, h) <= 0
}
