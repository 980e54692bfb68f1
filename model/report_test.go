package model

import (
	"testing"
)

func TestReportAdd(t *testing.T) {
	r := &Report{}
	if !r.Clean() {
		t.Fatal("empty report is clean")
	}

	v := r.Add("foo", "has the same MAC address as %s", "bar")
	if r.Clean() || len(r.Violations) != 1 {
		t.Fatalf("report not match with expect: %+v", r)
	}
	if v.String() != "foo: has the same MAC address as bar" {
		t.Fatalf("violation string not match with expect: %s", v.String())
	}
}

func TestRecognizedType(t *testing.T) {
	for _, typ := range []string{TypeDesktop, TypeServer, TypePrinter, TypeNetwork, TypeStaffVM, TypeDHCP} {
		if !RecognizedType(typ) {
			t.Fatalf("type %s not match with expect", typ)
		}
	}
	if RecognizedType("toaster") || RecognizedType("") {
		t.Fatal("unknown type not match with expect")
	}
}
