// Package specs finds spec documents that were written moments ago.
package specs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FreshnessWindow is how recently a file must have been modified to count as
// just created.
const FreshnessWindow = 5 * time.Minute

// File is a candidate spec document.
type File struct {
	Path    string
	ModTime time.Time
}

// NormalizeExtension makes sure ext begins with a dot.
func NormalizeExtension(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// IsFresh reports whether modTime falls inside the freshness window ending at now.
func IsFresh(modTime, now time.Time) bool {
	return now.Sub(modTime) <= FreshnessWindow
}

// DirExists reports whether dir exists. Stat failures other than "not
// found" are returned as errors.
func DirExists(dir string) (bool, error) {
	_, err := os.Stat(dir)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("specs: stat %s: %w", dir, err)
}

// FindRecent lists the regular files in dir whose names end with ext and
// that were modified within FreshnessWindow of now, newest first. A missing
// directory yields no files.
func FindRecent(dir, ext string, now time.Time) ([]File, error) {
	exists, err := DirExists(dir)
	if err != nil || !exists {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("specs: list %s: %w", dir, err)
	}
	suffix := NormalizeExtension(ext)
	var files []File
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		info, err := os.Stat(full)
		if err != nil {
			return nil, fmt.Errorf("specs: stat %s: %w", full, err)
		}
		if info.IsDir() || !IsFresh(info.ModTime(), now) {
			continue
		}
		files = append(files, File{Path: full, ModTime: info.ModTime()})
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// Newest returns the most recently modified fresh file, if any.
func Newest(dir, ext string, now time.Time) (File, bool, error) {
	files, err := FindRecent(dir, ext, now)
	if err != nil || len(files) == 0 {
		return File{}, false, err
	}
	return files[0], true, nil
}
