// Package types defines every cross‑package data structure used by the rich-tree CLI.
package types

// NodeKind tags a TreeNode as a directory, a file, or a permission-denied placeholder.
type NodeKind string

const (
	NodeKindDirectory NodeKind = "directory"
	NodeKindFile      NodeKind = "file"
	NodeKindDenied    NodeKind = "denied"
)

// IconCategory is the closed set of icons a rendered entry can carry.
type IconCategory string

const (
	IconDirectory        IconCategory = "directory"
	IconPythonSource     IconCategory = "python-source"
	IconTextLike         IconCategory = "text-like"
	IconImage            IconCategory = "image"
	IconVideo            IconCategory = "video"
	IconAudio            IconCategory = "audio"
	IconArchive          IconCategory = "archive"
	IconExecutable       IconCategory = "executable"
	IconStructuredData   IconCategory = "structured-data"
	IconGenericFile      IconCategory = "generic-file"
	IconPermissionDenied IconCategory = "permission-denied"
	IconRoot             IconCategory = "root"
	IconTreeMarker       IconCategory = "tree-marker"
	IconScanMarker       IconCategory = "scan-marker"
)

// IconCategories lists every IconCategory in declaration order.
var IconCategories = []IconCategory{
	IconDirectory,
	IconPythonSource,
	IconTextLike,
	IconImage,
	IconVideo,
	IconAudio,
	IconArchive,
	IconExecutable,
	IconStructuredData,
	IconGenericFile,
	IconPermissionDenied,
	IconRoot,
	IconTreeMarker,
	IconScanMarker,
}

// ScanConfig is the immutable input to a single traversal.
type ScanConfig struct {
	Root       string
	MaxDepth   int
	ShowSize   bool
	ShowHidden bool
}

// ValidatedPath is an absolute directory path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
}

// TreeNode is one entry of the rendered tree. A node owns its children exclusively.
type TreeNode struct {
	Kind      NodeKind
	Name      string
	Path      string
	Icon      IconCategory
	SizeBytes int64
	HasSize   bool
	IsRoot    bool
	Children  []*TreeNode
}

// IsDirectory reports whether the node represents a directory.
func (node *TreeNode) IsDirectory() bool {
	return node != nil && node.Kind == NodeKindDirectory
}

// Summary holds the totals shown after the tree.
type Summary struct {
	Directories int
	Files       int
	TotalBytes  int64
	HasSize     bool
}
