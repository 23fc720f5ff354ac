// Package yaml loads site playbooks from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/docindex"
	"gopkg.in/yaml.v3"
)

// LoadPlaybook reads the playbook at path. Only the site settings are
// decoded; the rest of the playbook (content sources, UI bundle) is ignored.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is not
// valid YAML.
func LoadPlaybook(path string) (*docindex.Playbook, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "playbook %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read playbook: %w", err)
	}
	return ParsePlaybook(data)
}

// ParsePlaybook decodes playbook YAML. An empty document yields an empty
// playbook.
func ParsePlaybook(data []byte) (*docindex.Playbook, error) {
	var playbook docindex.Playbook
	if err := yaml.Unmarshal(data, &playbook); err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid playbook: %s", err)
	}
	playbook.Site.URL = strings.TrimSpace(playbook.Site.URL)
	return &playbook, nil
}
