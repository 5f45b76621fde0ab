package setup

import (
	"os"

	"github.com/spf13/afero"
)

func readlink(fs afero.Fs, name string) (string, error) {
	if lr, ok := fs.(afero.LinkReader); ok {
		return lr.ReadlinkIfPossible(name)
	}
	return "", afero.ErrNoReadlink
}

func lstat(fs afero.Fs, name string) (os.FileInfo, error) {
	if ls, ok := fs.(afero.Lstater); ok {
		fi, _, err := ls.LstatIfPossible(name)
		return fi, err
	}
	return fs.Stat(name)
}

func copyFile(fs afero.Fs, src, dst string) error {
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return err
	}
	fi, err := fs.Stat(src)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, dst, data, fi.Mode())
}
