package utils

import (
	"regexp"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// RemoveTrailingSlash removes trailing slashes, if any
func RemoveTrailingSlash(path string) string {
	return strings.TrimRight(path, "/")
}

// EnsureTrailingSlash adds a trailing slash if one isn't already present
func EnsureTrailingSlash(dir string) string {
	if hasTrailingSlash.MatchString(dir) {
		return dir
	}
	return dir + "/"
}

// ExpandHome expands a leading "~" or "~/" in path to the current user's home
// directory. Paths without a leading tilde are returned unchanged.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}
