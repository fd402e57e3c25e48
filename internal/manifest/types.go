package manifest

import "sort"

// FileEntry describes a single tracked file. Path is the file's directory
// relative to the content root, forward-slash separated, empty for files
// at the root itself.
type FileEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Manifest is the serializable content listing. Files is sorted by
// (path, name) ascending and Directories lexicographically ascending;
// both slices are always non-nil so they marshal as [] rather than null.
type Manifest struct {
	Files       []FileEntry `json:"files"`
	Directories []string    `json:"directories"`
}

// New returns an empty manifest with initialized slices
func New() *Manifest {
	return &Manifest{
		Files:       []FileEntry{},
		Directories: []string{},
	}
}

// Sort orders Files by (path, name) and Directories lexicographically.
// Sorting is a pure function of the collected entries.
func (m *Manifest) Sort() {
	sort.Slice(m.Files, func(i, j int) bool {
		if m.Files[i].Path != m.Files[j].Path {
			return m.Files[i].Path < m.Files[j].Path
		}
		return m.Files[i].Name < m.Files[j].Name
	})
	sort.Strings(m.Directories)
}

// FileCount returns the number of tracked files
func (m *Manifest) FileCount() int {
	return len(m.Files)
}

// DirectoryCount returns the number of recorded directories
func (m *Manifest) DirectoryCount() int {
	return len(m.Directories)
}
