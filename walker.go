package templatize

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Process applies one strategy across the subtree rooted at target, which
// may be a single file. A nil approver applies every change.
//
// Per directory the order is fixed: recurse into child directories
// (contents only), rename child directories bottom-up, then process files.
// A file's content is rewritten before its own rename, and a directory's
// descendants are fully processed before the directory itself is renamed,
// so no step ever observes a path invalidated by an earlier rename. The
// target directory itself is renamed last of all.
func Process(target string, replacer Replacer, opts Options, approver Approver) (Result, error) {
	if approver == nil {
		approver = ApproveAll()
	}
	w := &walker{replacer: replacer, opts: opts, approver: approver}

	info, err := os.Stat(target)
	if err != nil {
		return Result{}, fmt.Errorf("target %q: %w", target, err)
	}

	switch {
	case info.Mode().IsRegular():
		err = w.processFile(target)
	case info.IsDir():
		if err = w.processDirContents(target); err == nil && opts.Paths {
			err = w.renameByComponent(target, "target directory")
		}
	default:
		return Result{}, fmt.Errorf("target %q is neither a file nor a directory", target)
	}
	if err != nil {
		return Result{}, err
	}
	return w.result, nil
}

type walker struct {
	replacer Replacer
	opts     Options
	approver Approver
	result   Result
}

func (w *walker) processDirContents(dir string) error {
	slog.Debug("processing directory", "path", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", dir, err)
	}

	// Partition once so the view of this directory stays stable across
	// the rename step below.
	var dirs, files []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if e.IsDir() {
			dirs = append(dirs, p)
		} else if e.Type().IsRegular() {
			files = append(files, p)
		}
	}

	for _, d := range dirs {
		if err := w.processDirContents(d); err != nil {
			return err
		}
	}

	// Reverse enumeration order guards against sibling rename collisions.
	if w.opts.Paths {
		for i := len(dirs) - 1; i >= 0; i-- {
			if err := w.renameDir(dirs[i]); err != nil {
				return err
			}
		}
	}

	for _, f := range files {
		if err := w.processFile(f); err != nil {
			return err
		}
	}
	return nil
}

// renameDir renames one child directory. A segment-spanning token is first
// matched against the whole path, moving the subtree in one rename; only
// when that fails does the last segment get transformed on its own.
func (w *walker) renameDir(path string) error {
	if w.replacer.SpansSegments() {
		if newPath, ok := w.replacer.TransformPath(path); ok && newPath != path {
			return w.applyRename(path, newPath, "directory", true)
		}
	}
	return w.renameByComponent(path, "directory")
}

func (w *walker) renameByComponent(path, kind string) error {
	newName, ok := w.replacer.TransformComponent(path)
	if !ok {
		return nil
	}
	return w.applyRename(path, filepath.Join(filepath.Dir(path), newName), kind, false)
}

func (w *walker) applyRename(oldPath, newPath, kind string, createParents bool) error {
	approved, err := w.approver.Path(PathChange{OldPath: oldPath, NewPath: newPath, Kind: kind})
	if err != nil {
		return err
	}
	if !approved {
		return nil
	}

	if w.opts.DryRun {
		slog.Info("would rename "+kind, "from", oldPath, "to", newPath)
	} else {
		slog.Info("renaming "+kind, "from", oldPath, "to", newPath)
		if createParents {
			if err := ensureParentDir(newPath); err != nil {
				return err
			}
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("renaming %q: %w", oldPath, err)
		}
	}
	w.result.PathsRenamed++
	return nil
}

func (w *walker) processFile(path string) error {
	slog.Debug("processing file", "path", path)
	w.result.FilesProcessed++

	// Content first, while the file still sits at its pre-rename path.
	if w.opts.Contents {
		if err := w.transformFileContent(path); err != nil {
			return err
		}
	}
	if w.opts.Paths {
		if err := w.renameByComponent(path, "file"); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) transformFileContent(path string) error {
	content, isText, err := readTextFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	if !isText {
		slog.Debug("skipping binary file", "path", path)
		return nil
	}

	newContent, ok := w.replacer.TransformContent(content)
	if !ok {
		return nil
	}

	approved, err := w.approver.Content(ContentChange{
		Path:        path,
		Old:         content,
		New:         newContent,
		Description: w.replacer.Describe(),
	})
	if err != nil {
		return err
	}
	if !approved {
		return nil
	}

	if w.opts.DryRun {
		slog.Info("would update contents", "path", path)
	} else {
		slog.Info("updating contents", "path", path)
		if err := os.WriteFile(path, []byte(newContent), 0644); err != nil {
			return fmt.Errorf("writing %q: %w", path, err)
		}
	}
	w.result.ContentChanges++
	return nil
}
