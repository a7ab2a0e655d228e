package scan

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Zuo-Peng/wa-chat-stats/internal/parse"
)

// sniffLines is how many lines of a .txt file are checked for a timestamp
// prefix before it is rejected as not being an export.
const sniffLines = 20

type FileInfo struct {
	Path  string
	Mtime int64
	Size  int64
}

// ScanRoot walks root and returns every .txt file that looks like a chat
// export, newest first.
func ScanRoot(root string) ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".txt") {
			return nil
		}
		if !IsExport(path) {
			return nil
		}
		files = append(files, FileInfo{
			Path:  path,
			Mtime: info.ModTime().Unix(),
			Size:  info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Mtime != files[j].Mtime {
			return files[i].Mtime > files[j].Mtime
		}
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// IsExport reports whether one of the first lines of the file starts with a
// message timestamp.
func IsExport(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 0; i < sniffLines && sc.Scan(); i++ {
		if parse.CountPrefixes(sc.Text()+"\n") > 0 {
			return true
		}
	}
	return false
}
