package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultPriorityScore is used when neither the model nor the caller supplies a score.
const DefaultPriorityScore = 50

// EmailMessage is the caller-supplied email being classified or replied to.
type EmailMessage struct {
	Sender        string   `json:"sender"`
	Subject       string   `json:"subject"`
	Body          string   `json:"body"`
	Category      string   `json:"category"`
	Labels        []string `json:"labels"`
	PriorityScore *int     `json:"priorityScore,omitempty"`
}

// PriorityOr returns the email's score clamped to [0,100], or fallback when unset.
func (e *EmailMessage) PriorityOr(fallback int) int {
	if e.PriorityScore == nil {
		return fallback
	}
	return ClampScore(*e.PriorityScore)
}

// LabelsCopy returns the email's labels as a non-nil slice.
func (e *EmailMessage) LabelsCopy() []string {
	out := make([]string, 0, len(e.Labels))
	return append(out, e.Labels...)
}

// Classification is the result of classifying an email.
type Classification struct {
	Labels           []string `json:"labels"`
	PriorityScore    int      `json:"priorityScore"`
	Summary          string   `json:"summary"`
	SuggestedActions []string `json:"suggestedActions"`
}

// Tone selects the phrasing of drafted replies.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneBrief        Tone = "Brief"
)

// ParseTone maps a case-insensitive tone name to a Tone.
func ParseTone(s string) (Tone, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "professional":
		return ToneProfessional, true
	case "friendly":
		return ToneFriendly, true
	case "brief":
		return ToneBrief, true
	default:
		return "", false
	}
}

// ToneRequest asks for reply drafts to an email.
type ToneRequest struct {
	Email    EmailMessage `json:"email"`
	Tone     Tone         `json:"tone"`
	Snippets []string     `json:"snippets"`
}

// DraftVariantCount is the number of variants every DraftReply carries.
const DraftVariantCount = 3

// DraftVariant is one alternative reply.
type DraftVariant struct {
	Text              string `json:"text"`
	Tokens            int    `json:"tokens"`
	EstimatedSendTime string `json:"estimatedSendTime"`
}

// DraftReply holds reply variants ordered from least to most detailed.
type DraftReply struct {
	Variants []DraftVariant `json:"variants"`
}

// ClampScore bounds a priority score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// wordsPerSendMinute is the review-and-send pace behind EstimateSendTime.
const wordsPerSendMinute = 50

// EstimateTokens approximates the token count of text at four runes per token.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	return (n + 3) / 4
}

// EstimateSendTime renders how long text takes to review and send.
func EstimateSendTime(text string) string {
	words := len(strings.Fields(text))
	if words <= wordsPerSendMinute {
		return "<1 min"
	}
	return fmt.Sprintf("~%d min", (words+wordsPerSendMinute-1)/wordsPerSendMinute)
}
