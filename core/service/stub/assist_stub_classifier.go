// Package stub provides offline classification and drafting used when no
// provider is configured or the remote call fails.
package stub

import (
	"fmt"
	"strings"

	"assist_server/core/domain"
)

// Stub is stateless; the zero value is ready to use.
type Stub struct{}

// New returns a Stub.
func New() *Stub {
	return &Stub{}
}

var (
	urgentKeywords   = []string{"urgent", "asap", "critical", "immediately", "deadline"}
	lowValueKeywords = []string{"newsletter", "unsubscribe", "no-reply", "noreply", "promotion"}
)

type actionRule struct {
	keywords []string
	action   string
}

var actionRules = []actionRule{
	{[]string{"urgent", "asap", "critical", "immediately"}, "Respond today"},
	{[]string{"meeting", "schedule", "call", "calendar"}, "Schedule a meeting"},
	{[]string{"invoice", "payment", "billing", "receipt"}, "Review payment details"},
	{[]string{"contract", "proposal", "deal", "quote"}, "Review the proposal"},
	{[]string{"?"}, "Reply to sender"},
}

var defaultActions = []string{"Reply to sender", "Archive"}

// Classify returns a keyword-based classification of email.
func (s *Stub) Classify(email *domain.EmailMessage) domain.Classification {
	text := strings.ToLower(email.Subject + "\n" + email.Body)

	return domain.Classification{
		Labels:           stubLabels(email),
		PriorityScore:    email.PriorityOr(heuristicScore(text)),
		Summary:          stubSummary(email),
		SuggestedActions: suggestActions(text),
	}
}

func stubLabels(email *domain.EmailMessage) []string {
	if len(email.Labels) > 0 {
		return email.LabelsCopy()
	}
	if category := strings.TrimSpace(email.Category); category != "" {
		return []string{category}
	}
	return []string{}
}

func heuristicScore(text string) int {
	score := domain.DefaultPriorityScore
	if containsAny(text, urgentKeywords) {
		score += 30
	}
	if strings.Contains(text, "?") {
		score += 10
	}
	if containsAny(text, lowValueKeywords) {
		score -= 30
	}
	return domain.ClampScore(score)
}

func stubSummary(email *domain.EmailMessage) string {
	summary := fmt.Sprintf("Email from %s", email.Sender)
	if subject := strings.TrimSpace(email.Subject); subject != "" {
		summary += ": " + subject
	}
	return summary
}

func suggestActions(text string) []string {
	actions := []string{}
	for _, rule := range actionRules {
		if containsAny(text, rule.keywords) {
			actions = append(actions, rule.action)
		}
	}
	if len(actions) == 0 {
		return append(actions, defaultActions...)
	}
	return actions
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
