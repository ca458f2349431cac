package fs

// Kind classifies a directory entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
	KindUnknown
)

// Entry is a single child of a directory. Entries are immutable once
// produced by a scan and are replaced wholesale on every re-scan.
type Entry struct {
	Name string
	Path string
	Kind Kind
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}
