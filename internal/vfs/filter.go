package vfs

import (
	"path/filepath"
	"strings"
)

// Filter decides which files are handed to the detector.
type Filter struct {
	AllowedExtensions []string
	MaxSize           int64 // 0 means no limit
}

// NewFilter creates a new Filter with the given settings.
func NewFilter(extensions []string, maxSize int64) *Filter {
	return &Filter{
		AllowedExtensions: extensions,
		MaxSize:           maxSize,
	}
}

// ShouldProcess checks if a file of the given size should be handled.
// An empty extension list accepts every file.
func (f *Filter) ShouldProcess(path string, size int64) bool {
	if f.MaxSize > 0 && size > f.MaxSize {
		return false
	}
	return f.matchExtension(path)
}

func (f *Filter) matchExtension(path string) bool {
	if len(f.AllowedExtensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range f.AllowedExtensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
