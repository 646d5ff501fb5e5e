package host

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const osReleasePath = "/etc/os-release"

// Release holds the os-release fields used to gate actors.
type Release struct {
	ID        string
	Name      string
	VersionID string
	IDLike    []string
}

// Release reads the host's os-release file.
func (h Host) Release() (*Release, error) {
	path := h.Path(osReleasePath)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()

	rel := &Release{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if unquoted, err := strconv.Unquote(value); err == nil {
			value = unquoted
		} else {
			value = strings.Trim(value, `'"`)
		}
		switch key {
		case "ID":
			rel.ID = value
		case "NAME":
			rel.Name = value
		case "VERSION_ID":
			rel.VersionID = value
		case "ID_LIKE":
			rel.IDLike = strings.Fields(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	return rel, nil
}

// IsCloudLinux reports whether the release is CloudLinux.
func (r *Release) IsCloudLinux() bool {
	return r.ID == "cloudlinux" || strings.HasPrefix(strings.ToLower(r.Name), "cloudlinux")
}
