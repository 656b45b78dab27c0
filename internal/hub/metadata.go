package hub

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lcgerke/localhub/internal/git"
)

// structuralEntries must all exist for a directory to count as a bare repository
var structuralEntries = []string{"HEAD", "objects", "refs"}

// IsBareRepository checks the minimal bare repository layout
func IsBareRepository(path string) bool {
	for _, entry := range structuralEntries {
		if _, err := os.Stat(filepath.Join(path, entry)); err != nil {
			return false
		}
	}
	return true
}

// dirSize sums the sizes of all regular files below path
func dirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// commitCount walks the full history reachable from HEAD.
// nil means HEAD is unborn, not a commit, or the history cannot be read.
func commitCount(path string) *int {
	client := git.NewBareClient(path)

	head, ok, err := client.HeadCommit()
	if err != nil || !ok {
		return nil
	}

	count, err := client.CountCommits(head)
	if err != nil {
		return nil
	}
	return &count
}
