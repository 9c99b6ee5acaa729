package common

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// ErrBadEntryName is returned for names that can't be used as a local filename
var ErrBadEntryName = errors.New("invalid entry name")

// CreateDirIfNeeded will create the directory (and its parents)
// if it does not exists
func CreateDirIfNeeded(path string) error {
	stat, err := os.Stat(path)

	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(path, os.ModePerm)
		}
		return err
	}

	if !stat.Mode().IsDir() {
		return fmt.Errorf("is not a directory '%s' (and it should be)", path)
	}

	return nil
}

// LocalFileName returns the name used on disk for a remote name. Only
// the last element is kept, so the file always lands in the output directory.
func LocalFileName(name string) (string, error) {
	base := filepath.Base(filepath.FromSlash(name))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: '%s'", ErrBadEntryName, name)
	}
	return base, nil
}

// CleanURL by parsing it
func CleanURL(urlIn string) (string, error) {
	urlObj, err := url.Parse(urlIn)
	if err != nil {
		return urlIn, err
	}
	urlObj.Path = path.Clean(urlObj.Path)
	return urlObj.String(), nil
}
