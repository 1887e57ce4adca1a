package commands

import "github.com/temirov/richtree/internal/types"

// Summarize counts the directories and files displayed below the root. Permission
// placeholders are not counted. The total size is taken from the root when sizes were computed.
func Summarize(root *types.TreeNode) types.Summary {
	summary := types.Summary{}
	if root == nil {
		return summary
	}
	countDescendants(root, &summary)
	if root.HasSize {
		summary.TotalBytes = root.SizeBytes
		summary.HasSize = true
	}
	return summary
}

func countDescendants(node *types.TreeNode, summary *types.Summary) {
	for _, child := range node.Children {
		switch {
		case child.IsDirectory():
			summary.Directories++
			countDescendants(child, summary)
		case child.Kind == types.NodeKindFile:
			summary.Files++
		}
	}
}
