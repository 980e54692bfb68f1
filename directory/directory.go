// Package directory is the LDAP client shared by the admin tools. A
// Session wraps one bound connection; callers open it, run one or two
// operations and close it.
package directory

import (
	"errors"
	"fmt"
	"net"

	"github.com/ocflabs/labops/config"
	"github.com/ocflabs/labops/model"

	"github.com/go-ldap/ldap"
)

// DefaultServer is the production directory server.
const DefaultServer = "ldap.ocf.berkeley.edu:389"

var (
	ErrUserNotFound = errors.New("user not found in directory")
	ErrNoServer     = errors.New("no directory server configured")
)

// Session is one open, bound directory connection.
type Session struct {
	conn *ldap.Conn
	conf config.DirectoryConfig
}

// Open dials the configured directory server and binds with the
// service credentials. An empty binddn means an anonymous bind.
// Failure here is fatal to the caller: no directory, no run.
func Open(c config.DirectoryConfig) (*Session, error) {
	if c.Server == "" {
		return nil, ErrNoServer
	}

	l, err := ldap.Dial("tcp", c.Server)
	if err != nil {
		return nil, fmt.Errorf("dial directory %s: %v", c.Server, err)
	}

	if c.Binddn != "" {
		if err := l.Bind(c.Binddn, c.Password); err != nil {
			l.Close()
			return nil, fmt.Errorf("bind as %s: %v", c.Binddn, err)
		}
	}
	return &Session{conn: l, conf: c}, nil
}

// Close releases the connection.
func (s *Session) Close() {
	s.conn.Close()
}

// Hosts fetches every entry with a cn under base, read-only. Absent
// attributes come back as zero values rather than being skipped.
func (s *Session) Hosts(base string) ([]model.Host, error) {
	searchRequest := ldap.NewSearchRequest(
		base,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		"(cn=*)",
		[]string{model.CNProp, model.TypeProp, model.MACProp, model.IPProp, model.DNSAProp, model.DNSCnameProp},
		nil,
	)

	sr, err := s.conn.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search hosts under %s: %v", base, err)
	}

	hosts := make([]model.Host, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		hosts = append(hosts, hostFromEntry(entry))
	}
	return hosts, nil
}

func hostFromEntry(entry *ldap.Entry) model.Host {
	h := model.Host{
		CN:       entry.GetAttributeValue(model.CNProp),
		Type:     entry.GetAttributeValue(model.TypeProp),
		MAC:      entry.GetAttributeValue(model.MACProp),
		DNSA:     entry.GetAttributeValues(model.DNSAProp),
		DNSCname: entry.GetAttributeValues(model.DNSCnameProp),
	}
	// ParseIP returns nil on garbage, which the auditor reports.
	if raw := entry.GetAttributeValue(model.IPProp); raw != "" {
		h.IP = net.ParseIP(raw)
	}
	return h
}

// ReplaceMail updates a user's mail attributes. Older user entries
// carry the ocfEmail attribute and newer ones do not, so the modify is
// tried with both attributes first and retried with mail alone when
// the schema rejects it.
func (s *Session) ReplaceMail(uid, mail string) (string, error) {
	searchRequest := ldap.NewSearchRequest(
		s.conf.UserBase,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		fmt.Sprintf("(uid=%s)", uid),
		[]string{"mail"},
		nil,
	)
	sr, err := s.conn.Search(searchRequest)
	if err != nil {
		return "", fmt.Errorf("search user %s: %v", uid, err)
	}
	if len(sr.Entries) != 1 {
		return "", ErrUserNotFound
	}
	userdn := sr.Entries[0].DN
	oldMail := sr.Entries[0].GetAttributeValue("mail")

	modify := ldap.NewModifyRequest(userdn)
	modify.Replace("mail", []string{mail})
	modify.Replace("ocfEmail", []string{mail})
	if err := s.conn.Modify(modify); err == nil {
		return oldMail, nil
	}

	modify = ldap.NewModifyRequest(userdn)
	modify.Replace("mail", []string{mail})
	if err := s.conn.Modify(modify); err != nil {
		return "", fmt.Errorf("modify mail of %s: %v", userdn, err)
	}
	return oldMail, nil
}
