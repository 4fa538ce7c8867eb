package scan

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	KindText = "txt"
	KindZip  = "zip"
)

type FileInfo struct {
	Path  string
	Kind  string // KindText or KindZip
	Mtime int64
	Size  int64
}

// ScanDir finds chat exports under root: .txt files and .zip archives whose
// name mentions "chat", e.g. "WhatsApp Chat with Sam.txt" or "_chat.txt".
// Results are sorted by path.
func ScanDir(root string) ([]FileInfo, error) {
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
		kind := kindOf(path)
		if kind == "" {
			return nil
		}
		if !strings.Contains(strings.ToLower(info.Name()), "chat") {
			return nil
		}
		files = append(files, FileInfo{
			Path:  path,
			Kind:  kind,
			Mtime: info.ModTime().Unix(),
			Size:  info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func kindOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return KindText
	case ".zip":
		return KindZip
	}
	return ""
}

// Open returns the transcript text of a .txt export, or of the chat member
// inside a .zip export ("_chat.txt", else the first .txt entry).
func Open(path string) (io.ReadCloser, error) {
	if kindOf(path) != KindZip {
		return os.Open(path)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	member := chatMember(zr.File)
	if member == nil {
		zr.Close()
		return nil, fmt.Errorf("no .txt transcript in %s", path)
	}
	rc, err := member.Open()
	if err != nil {
		zr.Close()
		return nil, err
	}
	return &zipMember{ReadCloser: rc, archive: zr}, nil
}

func chatMember(files []*zip.File) *zip.File {
	var first *zip.File
	for _, f := range files {
		if f.FileInfo().IsDir() || kindOf(f.Name) != KindText {
			continue
		}
		if filepath.Base(f.Name) == "_chat.txt" {
			return f
		}
		if first == nil {
			first = f
		}
	}
	return first
}

type zipMember struct {
	io.ReadCloser
	archive *zip.ReadCloser
}

func (z *zipMember) Close() error {
	err := z.ReadCloser.Close()
	if cerr := z.archive.Close(); err == nil {
		err = cerr
	}
	return err
}
