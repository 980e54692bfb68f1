package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

var testConf = `
[directory]
server = "ldap.example.edu:389"
binddn = "cn=audit,dc=example,dc=edu"
password = "secret"
hostbase = "ou=Hosts,dc=example,dc=edu"
userbase = "ou=People,dc=example,dc=edu"

[audit]
domain = "example.edu"
staffvm_low = "10.0.0.10"
staffvm_high = "10.0.0.20"

[http]
bind = "127.0.0.1:8990"

[log]
logdir = "/tmp/labops"
loglevel = "DEBUG"
`

func TestParseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labops.conf")
	if err := ioutil.WriteFile(path, []byte(testConf), 0644); err != nil {
		t.Fatalf("write config fail: %s", err.Error())
	}

	if err := ParseConfig(path); err != nil {
		t.Fatalf("parse config fail: %s", err.Error())
	}
	c := GetConfig()
	if c.DirectoryConf.Server != "ldap.example.edu:389" || c.DirectoryConf.HostBase != "ou=Hosts,dc=example,dc=edu" {
		t.Fatalf("directory config not match with expect: %+v", c.DirectoryConf)
	}
	if c.AuditConf.Domain != "example.edu" || c.AuditConf.StaffVMHigh != "10.0.0.20" {
		t.Fatalf("audit config not match with expect: %+v", c.AuditConf)
	}
	if c.LogConf.Level != "DEBUG" {
		t.Fatalf("log config not match with expect: %+v", c.LogConf)
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	if err := ParseConfig(filepath.Join(t.TempDir(), "nope.conf")); err == nil {
		t.Fatal("missing file not match with expect")
	}
}
