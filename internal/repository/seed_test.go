package repository_test

import (
	"os"
	"path/filepath"
	"time"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/repository"
)

func TestLoadSeed_Embedded(t *testing.T) {
	seed, err := repository.LoadSeed("")
	require.NoError(t, err)

	assert.Len(t, seed.Users, 3)
	assert.Len(t, seed.Agents, 5)
	assert.Len(t, seed.Workflows, 3)
	assert.Len(t, seed.Activities, 4)
	assert.Equal(t, "qwen2.5:7b", seed.Agents[0].Model)
	assert.Equal(t, []string{"document_parse", "vector_search", "summarize", "extract_entities"}, seed.Agents[0].Tools)
}

func TestLoadSeed_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := `
users:
  - username: ops
    password: hunter2
    role: admin
agents:
  - id: only-001
    name: Only Agent
    status: inactive
workflows:
  - id: wf-x
    name: Never Ran
    status: paused
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	seed, err := repository.LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Agents, 1)

	workflows := seed.WorkflowRecords(time.Now())
	require.Len(t, workflows, 1)
	assert.Nil(t, workflows[0].LastRun)
	assert.Equal(t, domain.WorkflowStatusPaused, workflows[0].Status)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := repository.LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseSeed_Invalid(t *testing.T) {
	cases := map[string]string{
		"malformed yaml":     "users: [",
		"no password":        "users:\n  - username: a\n    role: user\n",
		"both passwords":     "users:\n  - username: a\n    password: x\n    password_hash: y\n    role: user\n",
		"bad role":           "users:\n  - username: a\n    password: x\n    role: root\n",
		"duplicate user":     "users:\n  - username: a\n    password: x\n    role: user\n  - username: A\n    password: y\n    role: user\n",
		"agent without id":   "agents:\n  - name: nameless\n",
		"duplicate agent":    "agents:\n  - id: a\n  - id: a\n",
		"duplicate workflow": "workflows:\n  - id: w\n  - id: w\n",
		"bad last run":       "workflows:\n  - id: w\n    last_run_ago: yesterday\n",
		"bad activity ago":   "activities:\n  - agent: x\n    ago: soon\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := repository.ParseSeed([]byte(doc))
			assert.Error(t, err)
		})
	}
}
