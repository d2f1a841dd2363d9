// Package chat produces assistant replies for the dashboard chat widget.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/ospreyai/osprey/internal/domain"
)

// Responder answers a chat message. agent is nil for the general assistant.
type Responder interface {
	Respond(ctx context.Context, message string, agent *domain.Agent) (string, error)
}

// AgentCounter reports agent counts by status.
type AgentCounter interface {
	CountByStatus(status domain.AgentStatus) int
}

// WorkflowStats reports workflow aggregates.
type WorkflowStats interface {
	List() []domain.Workflow
	CountByStatus(status domain.WorkflowStatus) int
	MeanSuccessRate() float64
}

const defaultReply = "I understand you're asking about that. As your AI assistant, I'm here to help you optimize your operations with Osprey AI Labs. Could you be more specific about what you need?"

type rule struct {
	keyword string
	reply   func() string
}

// KeywordResponder replies with canned text chosen by the first keyword
// contained in the lowercased message.
type KeywordResponder struct {
	rules []rule
}

// NewKeywordResponder creates a KeywordResponder whose agent and workflow
// replies are computed from the given sources on every call.
func NewKeywordResponder(agents AgentCounter, workflows WorkflowStats) *KeywordResponder {
	static := func(s string) func() string { return func() string { return s } }

	return &KeywordResponder{
		rules: []rule{
			{"hello", static("Hello! I'm your Osprey AI assistant. How can I help you optimize your workflows today?")},
			{"hi", static("Hi there! Ready to streamline your operations with AI?")},
			{"help", static("I can assist you with:\n• Managing AI agents and workflows\n• Monitoring system performance\n• Analyzing data and generating insights\n• Troubleshooting issues\n• Optimizing processes\n\nWhat would you like to explore?")},
			{"agents", func() string {
				return fmt.Sprintf("You currently have %d active AI agents. Your RAG Document Processor and NL2SQL Builder are performing exceptionally well with 99%%+ success rates.",
					agents.CountByStatus(domain.AgentStatusActive))
			}},
			{"performance", static("Your platform is performing excellently:\n• 99.2% overall success rate\n• 247ms average response time\n• 847K+ requests processed\n• All critical systems operational\n• 24 agents running smoothly")},
			{"status", static("All systems are operational. Current load: 42% CPU, 68% Memory. Network performance is optimal.")},
			{"workflows", func() string {
				return fmt.Sprintf("You have %d workflows configured:\n• %d active\n• %d currently running\n• Average success rate: %.1f%%",
					len(workflows.List()),
					workflows.CountByStatus(domain.WorkflowStatusActive),
					workflows.CountByStatus(domain.WorkflowStatusRunning),
					workflows.MeanSuccessRate())
			}},
		},
	}
}

func (k *KeywordResponder) Respond(_ context.Context, message string, agent *domain.Agent) (string, error) {
	reply := defaultReply
	lower := strings.ToLower(message)
	for _, r := range k.rules {
		if strings.Contains(lower, r.keyword) {
			reply = r.reply()
			break
		}
	}

	if agent != nil {
		reply = "[" + agent.Name + "] " + reply
	}
	return reply, nil
}
