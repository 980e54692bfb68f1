package common

import (
	"testing"
)

func TestContainString(t *testing.T) {
	if _, ok := ContainString([]string{"a", "b"}, "b"); !ok {
		t.Fatal("case 1 fail not match with expect")
	}
	if _, ok := ContainString([]string{"a", "b"}, "c"); ok {
		t.Fatal("case 2 success not match with expect")
	}
	if index, ok := ContainString([]string{"a", "b"}, "a"); !ok || index != 0 {
		t.Fatal("case 3 not match with expect")
	}
}

func TestAddIfNotContain(t *testing.T) {
	if sl, ok := AddIfNotContain([]string{"a"}, "b"); !ok || len(sl) != 2 {
		t.Fatal("case 1 not match with expect")
	}
	if _, ok := AddIfNotContain([]string{"a"}, "a"); ok {
		t.Fatal("case 2 success not match with expect")
	}
	if _, ok := AddIfNotContain([]string{"a"}, ""); ok {
		t.Fatal("case 3 success not match with expect")
	}
}
