// Package commands contains the traversal engine that turns a directory into a TreeNode hierarchy.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/richtree/internal/icons"
	"github.com/temirov/richtree/internal/types"
	"github.com/temirov/richtree/internal/utils"
)

const (
	// errorAbsolutePathFormat is used when the absolute path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorNegativeDepthFormat rejects negative depth limits.
	errorNegativeDepthFormat = "max depth must be non-negative, got %d"
	// errorReadDirectoryFormat is used when a directory cannot be read for reasons other than permissions.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorInspectPathFormat is used when an entry disappears or cannot be inspected after listing.
	errorInspectPathFormat = "inspecting %s: %w"

	permissionDeniedLogMessage = "permission denied"
	deniedPlaceholderName      = "permission denied"
)

// BuildTree walks the configured root up to the maximum depth and returns the root node.
// Permission failures while listing a directory become placeholder children; other
// filesystem errors are returned.
func (treeBuilder *TreeBuilder) BuildTree() (*types.TreeNode, error) {
	if treeBuilder.Config.MaxDepth < 0 {
		return nil, fmt.Errorf(errorNegativeDepthFormat, treeBuilder.Config.MaxDepth)
	}
	absoluteRootPath, absolutePathError := filepath.Abs(treeBuilder.Config.Root)
	if absolutePathError != nil {
		return nil, fmt.Errorf(errorAbsolutePathFormat, treeBuilder.Config.Root, absolutePathError)
	}

	rootNode := &types.TreeNode{
		Kind:   types.NodeKindDirectory,
		Name:   utils.DisplayName(absoluteRootPath),
		Path:   absoluteRootPath,
		Icon:   types.IconRoot,
		IsRoot: true,
	}
	if err := treeBuilder.expand(rootNode, 0); err != nil {
		return nil, err
	}
	if treeBuilder.Config.ShowSize {
		rootNode.SizeBytes = DirectorySize(absoluteRootPath, treeBuilder.Config.ShowHidden)
		rootNode.HasSize = true
	}
	return rootNode, nil
}

// expand populates the children of a directory node located depth levels below the root.
func (treeBuilder *TreeBuilder) expand(parent *types.TreeNode, depth int) error {
	if depth >= treeBuilder.Config.MaxDepth {
		return nil
	}

	directoryEntries, readDirectoryError := os.ReadDir(parent.Path)
	if readDirectoryError != nil {
		if errors.Is(readDirectoryError, fs.ErrPermission) {
			treeBuilder.denyListing(parent, readDirectoryError)
			return nil
		}
		return fmt.Errorf(errorReadDirectoryFormat, parent.Path, readDirectoryError)
	}

	directories, files, partitionError := treeBuilder.partition(parent.Path, directoryEntries)
	if partitionError != nil {
		if errors.Is(partitionError, fs.ErrPermission) {
			treeBuilder.denyListing(parent, partitionError)
			return nil
		}
		return partitionError
	}
	sortByFoldedName(directories)
	sortByFoldedName(files)

	for _, directoryName := range directories {
		childPath := filepath.Join(parent.Path, directoryName)
		childNode := &types.TreeNode{
			Kind: types.NodeKindDirectory,
			Name: directoryName,
			Path: childPath,
			Icon: types.IconDirectory,
		}
		if treeBuilder.Config.ShowSize {
			childNode.SizeBytes = DirectorySize(childPath, treeBuilder.Config.ShowHidden)
			childNode.HasSize = true
		}
		parent.Children = append(parent.Children, childNode)
		if err := treeBuilder.expand(childNode, depth+1); err != nil {
			return err
		}
	}

	for _, fileName := range files {
		childPath := filepath.Join(parent.Path, fileName)
		childNode := &types.TreeNode{
			Kind: types.NodeKindFile,
			Name: fileName,
			Path: childPath,
			Icon: icons.CategoryForName(fileName),
		}
		if treeBuilder.Config.ShowSize {
			fileInfo, statError := os.Stat(childPath)
			if statError != nil {
				if errors.Is(statError, fs.ErrPermission) {
					treeBuilder.denyListing(parent, statError)
					return nil
				}
				return fmt.Errorf(errorInspectPathFormat, childPath, statError)
			}
			childNode.SizeBytes = fileInfo.Size()
			childNode.HasSize = true
		}
		parent.Children = append(parent.Children, childNode)
	}

	return nil
}

// partition splits listed entries into directory and regular-file names, following
// symbolic links, and drops hidden names unless they are requested. Entries that are
// neither, such as dangling links or sockets, are skipped. A link that cannot be resolved
// for lack of permission is returned as an error.
func (treeBuilder *TreeBuilder) partition(directoryPath string, directoryEntries []os.DirEntry) ([]string, []string, error) {
	var directories []string
	var files []string
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		if !treeBuilder.Config.ShowHidden && utils.IsHiddenName(entryName) {
			continue
		}
		entryMode := directoryEntry.Type()
		if entryMode&fs.ModeSymlink != 0 {
			entryPath := filepath.Join(directoryPath, entryName)
			targetInfo, statError := os.Stat(entryPath)
			if statError != nil {
				if errors.Is(statError, fs.ErrPermission) {
					return nil, nil, fmt.Errorf(errorInspectPathFormat, entryPath, statError)
				}
				continue
			}
			entryMode = targetInfo.Mode().Type()
		}
		switch {
		case entryMode.IsDir():
			directories = append(directories, entryName)
		case entryMode.IsRegular():
			files = append(files, entryName)
		}
	}
	return directories, files, nil
}

func sortByFoldedName(names []string) {
	sort.SliceStable(names, func(left, right int) bool {
		leftFolded := strings.ToLower(names[left])
		rightFolded := strings.ToLower(names[right])
		if leftFolded != rightFolded {
			return leftFolded < rightFolded
		}
		return names[left] < names[right]
	})
}

// denyListing replaces whatever was collected for parent with a single permission placeholder.
func (treeBuilder *TreeBuilder) denyListing(parent *types.TreeNode, cause error) {
	treeBuilder.Logger.Debug(permissionDeniedLogMessage, zap.String("path", parent.Path), zap.Error(cause))
	parent.Children = []*types.TreeNode{deniedPlaceholder()}
}

func deniedPlaceholder() *types.TreeNode {
	return &types.TreeNode{
		Kind: types.NodeKindDenied,
		Name: deniedPlaceholderName,
		Icon: types.IconPermissionDenied,
	}
}
