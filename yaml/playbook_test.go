package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const antoraPlaybook = `
site:
  title: Antora Docs
  url: https://docs.antora.org
  start_page: antora::index.adoc
content:
  sources:
  - url: https://gitlab.com/antora/antora.git
    branches: [v1.0.x]
    start_path: docs
ui:
  bundle:
    url: https://gitlab.com/antora/antora-ui-default/-/jobs/artifacts/master/raw/build/ui-bundle.zip?job=bundle-stable
`

func TestParsePlaybook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want docindex.Playbook
	}{
		{
			name: "full playbook keeps site settings",
			yaml: antoraPlaybook,
			want: docindex.Playbook{Site: docindex.Site{URL: "https://docs.antora.org", Title: "Antora Docs"}},
		},
		{
			name: "site without url",
			yaml: "site:\n  title: Local Docs\n",
			want: docindex.Playbook{Site: docindex.Site{Title: "Local Docs"}},
		},
		{
			name: "url with surrounding whitespace",
			yaml: "site:\n  url: \"  https://example.org/docs/  \"\n",
			want: docindex.Playbook{Site: docindex.Site{URL: "https://example.org/docs/"}},
		},
		{
			name: "empty document",
			yaml: "",
			want: docindex.Playbook{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			playbook, err := yaml.ParsePlaybook([]byte(tt.yaml))

			require.NoError(t, err)
			assert.Equal(t, tt.want, *playbook)
		})
	}

	t.Run("returns EINVALID for malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParsePlaybook([]byte("site: [unclosed"))

		require.Error(t, err)
		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})

	t.Run("returns EINVALID when site is not a mapping", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParsePlaybook([]byte("site:\n  - a\n  - b\n"))

		require.Error(t, err)
		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})
}

func TestLoadPlaybook(t *testing.T) {
	t.Parallel()

	t.Run("reads playbook from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "antora-playbook.yml")
		require.NoError(t, os.WriteFile(path, []byte(antoraPlaybook), 0644))

		playbook, err := yaml.LoadPlaybook(path)

		require.NoError(t, err)
		assert.Equal(t, "https://docs.antora.org", playbook.Site.URL)
		assert.Equal(t, "Antora Docs", playbook.Site.Title)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadPlaybook(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Equal(t, docindex.ENOTFOUND, docindex.ErrorCode(err))
	})
}
