package hub

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lcgerke/localhub/internal/constants"
	"github.com/lcgerke/localhub/internal/errors"
)

// forbiddenNameChars may not appear in a repository name
const forbiddenNameChars = `/\:*?"<>|`

// ValidateName checks a name before it is used to create a repository
func ValidateName(name string) error {
	if name == "" {
		return errors.InvalidName(name, "name cannot be empty")
	}

	if i := strings.IndexAny(name, forbiddenNameChars); i >= 0 {
		return errors.InvalidName(name, fmt.Sprintf("name cannot contain '%c'", name[i]))
	}

	if name == "." || name == ".." {
		return errors.InvalidName(name, "name cannot be '.' or '..'")
	}

	if name == constants.BareRepoSuffix {
		return errors.InvalidName(name, fmt.Sprintf("name cannot be just '%s'", constants.BareRepoSuffix))
	}

	if len(name) > constants.MaxRepoNameLength {
		return errors.InvalidName(name, fmt.Sprintf("name is too long (max %d characters)", constants.MaxRepoNameLength))
	}

	return nil
}

// NormalizeName appends the bare repository suffix unless already present
func NormalizeName(name string) string {
	if strings.HasSuffix(name, constants.BareRepoSuffix) {
		return name
	}
	return name + constants.BareRepoSuffix
}

// isRepoDirName reports whether a hub entry name looks like a bare repository
func isRepoDirName(name string) bool {
	return len(name) > len(constants.BareRepoSuffix) && strings.HasSuffix(name, constants.BareRepoSuffix)
}

// isSingleElement reports whether name refers to a direct child of the hub root
func isSingleElement(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}
