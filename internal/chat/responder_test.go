package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ospreyai/osprey/internal/chat"
	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/repository"
)

func newResponder(t *testing.T) (*chat.KeywordResponder, *repository.AgentRepository) {
	t.Helper()
	seed := repository.DefaultSeed()
	agents := repository.NewAgentRepository(seed.AgentRecords())
	workflows := repository.NewWorkflowRepository(seed.WorkflowRecords(time.Now()))
	return chat.NewKeywordResponder(agents, workflows), agents
}

func TestKeywordResponder_Keywords(t *testing.T) {
	r, _ := newResponder(t)
	ctx := context.Background()

	cases := map[string]string{
		"Hello there":               "Hello! I'm your Osprey AI assistant.",
		"HELP me":                   "I can assist you with:",
		"how are my agents doing?":  "You currently have 4 active AI agents.",
		"check performance":         "Your platform is performing excellently:",
		"system status":             "All systems are operational.",
		"list workflows":            "You have 3 workflows configured:\n• 2 active\n• 1 currently running\n• Average success rate: 99.3%",
		"quarterly revenue numbers": "I understand you're asking about that.",
	}

	for msg, want := range cases {
		reply, err := r.Respond(ctx, msg, nil)
		require.NoError(t, err)
		assert.Contains(t, reply, want, msg)
	}
}

func TestKeywordResponder_FirstMatchWins(t *testing.T) {
	r, _ := newResponder(t)

	reply, err := r.Respond(context.Background(), "hello, I need help", nil)
	require.NoError(t, err)
	assert.Contains(t, reply, "Hello! I'm your Osprey AI assistant.")
}

func TestKeywordResponder_AgentPrefix(t *testing.T) {
	r, agents := newResponder(t)

	agent, err := agents.GetByID("nl2sql-002")
	require.NoError(t, err)

	reply, err := r.Respond(context.Background(), "status", agent)
	require.NoError(t, err)
	assert.Equal(t, "[NL2SQL Builder] All systems are operational. Current load: 42% CPU, 68% Memory. Network performance is optimal.", reply)
}

func TestKeywordResponder_AgentCountTracksRepository(t *testing.T) {
	agents := repository.NewAgentRepository([]domain.Agent{{ID: "a", Status: domain.AgentStatusActive}})
	r := chat.NewKeywordResponder(agents, repository.NewWorkflowRepository(nil))

	reply, err := r.Respond(context.Background(), "agents", nil)
	require.NoError(t, err)
	assert.Contains(t, reply, "You currently have 1 active AI agents.")

	reply, err = r.Respond(context.Background(), "workflows", nil)
	require.NoError(t, err)
	assert.Contains(t, reply, "You have 0 workflows configured")
}
