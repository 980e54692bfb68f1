// Package weblink links a user's web-serving directory into their
// home directory.
package weblink

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultWebRoot is where per-user web directories live, sharded by
// the first letter of the username.
const DefaultWebRoot = "/services/http/users"

// Target returns the user's web directory under root.
func Target(root, user string) string {
	return filepath.Join(root, user[:1], user)
}

// Ensure creates home/public_html as a symlink to target. It succeeds
// if the link already exists and points at target, and refuses to
// touch anything else that may be in the way.
func Ensure(home, target string) error {
	link := filepath.Join(home, "public_html")

	existing, err := os.Readlink(link)
	if err == nil {
		if existing == target {
			return nil
		}
		return fmt.Errorf("%s is a symlink to %s, not %s", link, existing, target)
	}
	if _, serr := os.Lstat(link); serr == nil {
		return fmt.Errorf("%s exists and is not a symlink", link)
	}

	return os.Symlink(target, link)
}
