// Package resolver issues synchronous A and PTR queries through the
// nameservers the process environment is configured with.
package resolver

import (
	"errors"
	"net"

	dnslib "github.com/miekg/dns"
)

const resolvConf = "/etc/resolv.conf"

// ErrNotFound is returned when a lookup completes but carries no
// answer of the requested type.
var ErrNotFound = errors.New("no such record")

// Client resolves names against the system nameservers, one query at
// a time.
type Client struct {
	client  *dnslib.Client
	servers []string
	port    string
}

// New reads the system resolver configuration.
func New() (*Client, error) {
	conf, err := dnslib.ClientConfigFromFile(resolvConf)
	if err != nil {
		return nil, err
	}
	if len(conf.Servers) == 0 {
		return nil, errors.New("no nameservers configured")
	}
	return &Client{
		client:  new(dnslib.Client),
		servers: conf.Servers,
		port:    conf.Port,
	}, nil
}

// LookupA resolves fqdn to its A records.
func (c *Client) LookupA(fqdn string) ([]net.IP, error) {
	m := new(dnslib.Msg)
	m.SetQuestion(dnslib.Fqdn(fqdn), dnslib.TypeA)

	r, err := c.exchange(m)
	if err != nil {
		return nil, err
	}
	ips := aRecords(r)
	if len(ips) == 0 {
		return nil, ErrNotFound
	}
	return ips, nil
}

// LookupPTR resolves ip to the names of its PTR records.
func (c *Client) LookupPTR(ip net.IP) ([]string, error) {
	rev, err := dnslib.ReverseAddr(ip.String())
	if err != nil {
		return nil, err
	}
	m := new(dnslib.Msg)
	m.SetQuestion(rev, dnslib.TypePTR)

	r, err := c.exchange(m)
	if err != nil {
		return nil, err
	}
	names := ptrRecords(r)
	if len(names) == 0 {
		return nil, ErrNotFound
	}
	return names, nil
}

// exchange tries each configured nameserver in order and keeps the
// first response that arrives, whatever its rcode.
func (c *Client) exchange(m *dnslib.Msg) (*dnslib.Msg, error) {
	var lastErr error
	for _, server := range c.servers {
		r, _, err := c.client.Exchange(m, net.JoinHostPort(server, c.port))
		if err != nil {
			lastErr = err
			continue
		}
		if r.Rcode != dnslib.RcodeSuccess {
			return nil, ErrNotFound
		}
		return r, nil
	}
	return nil, lastErr
}

func aRecords(r *dnslib.Msg) []net.IP {
	var ips []net.IP
	for _, rr := range r.Answer {
		if a, ok := rr.(*dnslib.A); ok {
			ips = append(ips, a.A)
		}
	}
	return ips
}

func ptrRecords(r *dnslib.Msg) []string {
	var names []string
	for _, rr := range r.Answer {
		if ptr, ok := rr.(*dnslib.PTR); ok {
			names = append(names, ptr.Ptr)
		}
	}
	return names
}
