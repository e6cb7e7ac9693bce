package utils_test

import (
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/tmppath/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type utilsSuite struct {
	suite.Suite
}

type slashTest struct {
	path     string
	expected string
	message  string
}

func (s *utilsSuite) TestRemoveTrailingSlash() {
	tests := []slashTest{
		{
			path:     "/some/path/",
			expected: "/some/path",
			message:  "slash found - remove it",
		},
		{
			path:     "/some/path",
			expected: "/some/path",
			message:  "no slash - return as-is",
		},
		{
			path:     "/some/path///",
			expected: "/some/path",
			message:  "multiple slashes - remove them all",
		},
		{
			path:     "",
			expected: "",
			message:  "empty string - return as-is",
		},
	}

	for _, slashtest := range tests {
		s.Run(slashtest.message, func() {
			s.Equal(slashtest.expected, utils.RemoveTrailingSlash(slashtest.path), slashtest.message)
		})
	}
}

func (s *utilsSuite) TestEnsureTrailingSlash() {
	tests := []slashTest{
		{
			path:     "/some/path",
			expected: "/some/path/",
			message:  "no slash - adding one",
		},
		{
			path:     "/some/path/",
			expected: "/some/path/",
			message:  "slash found - don't add one",
		},
		{
			path:     "/",
			expected: "/",
			message:  "just a slash - don't add one",
		},
		{
			path:     "",
			expected: "/",
			message:  "empty string - add slash",
		},
	}

	for _, slashtest := range tests {
		s.Run(slashtest.message, func() {
			s.Equal(slashtest.expected, utils.EnsureTrailingSlash(slashtest.path), slashtest.message)
		})
	}
}

func (s *utilsSuite) TestExpandHome() {
	home, err := homedir.Dir()
	s.NoError(err)

	tests := []slashTest{
		{
			path:     "~/scratch",
			expected: home + "/scratch",
			message:  "leading tilde - expanded",
		},
		{
			path:     "/var/tmp",
			expected: "/var/tmp",
			message:  "absolute path - unchanged",
		},
		{
			path:     "relative/dir",
			expected: "relative/dir",
			message:  "relative path - unchanged",
		},
	}

	for _, hometest := range tests {
		s.Run(hometest.message, func() {
			actual, err := utils.ExpandHome(hometest.path)
			s.NoError(err, hometest.message)
			s.Equal(hometest.expected, actual, hometest.message)
		})
	}
}

func TestUtils(t *testing.T) {
	suite.Run(t, new(utilsSuite))
}
