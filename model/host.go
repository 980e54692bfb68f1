package model

import (
	"net"
)

// Host entry attribute names in the directory.
var (
	CNProp       = "cn"
	TypeProp     = "type"
	MACProp      = "macAddress"
	IPProp       = "ipHostNumber"
	DNSAProp     = "dnsA"
	DNSCnameProp = "dnsCname"
)

// Recognized host types.
const (
	TypeDesktop = "desktop"
	TypeServer  = "server"
	TypePrinter = "printer"
	TypeNetwork = "network"
	TypeStaffVM = "staffvm"
	TypeDHCP    = "dhcp"
)

var hostTypes = map[string]bool{
	TypeDesktop: true,
	TypeServer:  true,
	TypePrinter: true,
	TypeNetwork: true,
	TypeStaffVM: true,
	TypeDHCP:    true,
}

// RecognizedType reports whether t is one of the host types the
// directory schema allows.
func RecognizedType(t string) bool {
	return hostTypes[t]
}

// Host is one host entry fetched from the directory. Absent optional
// attributes are zero values: MAC is "", IP is nil, the legacy
// attribute lists are empty slices.
type Host struct {
	CN   string
	Type string
	MAC  string
	IP   net.IP

	// Deprecated directory attributes. Any value present on any host
	// is itself a finding.
	DNSA     []string
	DNSCname []string
}
