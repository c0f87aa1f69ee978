package fetch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// WriteTree writes every file of tree below dest, creating directories as
// needed and replacing files that already exist. It returns the number of
// entries written. Submodules are skipped.
func WriteTree(tree *object.Tree, dest string) (int, error) {
	root, err := filepath.Abs(dest)
	if err != nil {
		return 0, fmt.Errorf("resolving %s: %w", dest, err)
	}

	count := 0
	err = tree.Files().ForEach(func(f *object.File) error {
		target := filepath.Join(root, filepath.FromSlash(f.Name))
		if !within(root, target) {
			return fmt.Errorf("template entry %q escapes %s", f.Name, root)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Name, err)
		}

		if err := writeEntry(f, target); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		count++
		return nil
	})
	return count, err
}

func writeEntry(f *object.File, target string) error {
	// Never write through an existing symlink.
	if info, err := os.Lstat(target); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if err := os.Remove(target); err != nil {
			return err
		}
	}

	if f.Mode == filemode.Symlink {
		link, err := f.Contents()
		if err != nil {
			return err
		}
		if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
			return err
		}
		return os.Symlink(link, target)
	}

	perm := os.FileMode(0o644)
	if f.Mode == filemode.Executable {
		perm = 0o755
	}

	r, err := f.Reader()
	if err != nil {
		return err
	}
	defer r.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	// OpenFile keeps the mode of a file that already existed.
	return os.Chmod(target, perm)
}

func within(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
