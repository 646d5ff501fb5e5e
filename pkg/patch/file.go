// Package patch edits configuration files in place for the upgrade, keeping a
// backup of the original content where asked.
//
// Edits are best-effort: callers log failures and move on. A missing file is
// reported with the NotFound kind and is never created.
package patch

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Transform maps the lines of a file, terminators included, to new lines.
type Transform func(lines []string) []string

// File is a single pending edit: the content read from Path, the content
// that replaces it and, optionally, where the original content is saved.
type File struct {
	Path       string
	BackupPath string
	Original   []string
	Content    []string

	mode os.FileMode
}

// Open reads path for patching.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError("read", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, newError("read", path, err)
	}
	lines, err := readLines(f)
	if err != nil {
		return nil, newError("read", path, err)
	}
	return &File{
		Path:     path,
		Original: lines,
		Content:  lines,
		mode:     info.Mode().Perm(),
	}, nil
}

// Lines rewrites the file at path with the result of transform.
func Lines(path string, transform Transform) error {
	file, err := Open(path)
	if err != nil {
		return err
	}
	file.Content = transform(append([]string(nil), file.Original...))
	return file.overwrite()
}

// PrependWithBackup places header on top of the file at path and saves the
// original content to backupPath. Both files are staged before either is
// replaced, so a failure leaves them untouched.
//
// Each call backs up whatever is at path at that moment. Patching twice
// therefore backs up the content written by the first patch.
func PrependWithBackup(path, backupPath string, header []string) error {
	file, err := Open(path)
	if err != nil {
		return err
	}
	file.BackupPath = backupPath
	file.Content = append(append([]string(nil), header...), file.Original...)
	return file.commit()
}

// Remove deletes the file at path.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return newError("remove", path, err)
	}
	return nil
}

// overwrite truncates the file and writes the new content, keeping the
// file's ownership and mode.
func (f *File) overwrite() error {
	out, err := os.OpenFile(f.Path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return newError("write", f.Path, err)
	}
	defer out.Close()

	if err := writeLines(out, f.Content); err != nil {
		return newError("write", f.Path, err)
	}
	if err := out.Close(); err != nil {
		return newError("write", f.Path, err)
	}
	return nil
}

// commit writes the backup and the new content through temporary files and
// renames them into place once both are written.
func (f *File) commit() error {
	type staged struct{ tmp, target string }
	var pending []staged
	cleanup := func() {
		for _, s := range pending {
			os.Remove(s.tmp)
		}
	}

	writes := []struct {
		target string
		lines  []string
	}{
		{f.BackupPath, f.Original},
		{f.Path, f.Content},
	}
	for _, w := range writes {
		if w.target == "" {
			continue
		}
		tmp, err := stage(w.target, w.lines, f.mode)
		if err != nil {
			cleanup()
			return &Error{Kind: IOFailure, Op: "write", Path: w.target, Err: err}
		}
		pending = append(pending, staged{tmp, w.target})
	}

	for i, s := range pending {
		if err := os.Rename(s.tmp, s.target); err != nil {
			pending = pending[i:]
			cleanup()
			return &Error{Kind: IOFailure, Op: "write", Path: s.target, Err: err}
		}
	}
	return nil
}

func stage(target string, lines []string, mode os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return "", errors.Wrap(err, "unable to create staging file")
	}
	defer tmp.Close()

	if err := writeLines(tmp, lines); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Chmod(mode); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrap(err, "unable to set staging file mode")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrap(err, "unable to close staging file")
	}
	return tmp.Name(), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func writeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
