package stub

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"assist_server/core/domain"
)

type tonePhrasing struct {
	greeting  string // format with the recipient's name
	ack       string
	detail    string
	followUp  string
	closing   string
	signOff   string
	lead      string // introduces snippet points
	subjectRe string // format with the subject
}

var phrasings = map[domain.Tone]tonePhrasing{
	domain.ToneProfessional: {
		greeting:  "Dear %s,",
		ack:       "Thank you for your email.",
		detail:    "I have read through your message carefully and want to make sure we are aligned.",
		followUp:  "I will review it and get back to you shortly.",
		closing:   "Please let me know if you need anything further in the meantime.",
		signOff:   "Best regards",
		lead:      "I would like to address the following points:",
		subjectRe: "Thank you for your email regarding \"%s\".",
	},
	domain.ToneFriendly: {
		greeting:  "Hi %s!",
		ack:       "Thanks so much for reaching out!",
		detail:    "I really appreciate you taking the time to write this up.",
		followUp:  "I'll take a look and get back to you soon.",
		closing:   "Let me know if there's anything else I can help with!",
		signOff:   "Cheers",
		lead:      "A few things I wanted to mention:",
		subjectRe: "Thanks so much for your note about \"%s\"!",
	},
	domain.ToneBrief: {
		greeting:  "Hi %s,",
		ack:       "Thanks, got it.",
		detail:    "Read through it.",
		followUp:  "Will follow up shortly.",
		closing:   "Let me know if anything changes.",
		signOff:   "Thanks",
		lead:      "Key points:",
		subjectRe: "Thanks for your email about \"%s\".",
	},
}

// Draft returns three reply variants ordered from shortest to most detailed.
func (s *Stub) Draft(req *domain.ToneRequest) domain.DraftReply {
	p, ok := phrasings[req.Tone]
	if !ok {
		p = phrasings[domain.ToneProfessional]
	}

	greeting := fmt.Sprintf(p.greeting, recipientName(req.Email.Sender))
	snippets := trimmedSnippets(req.Snippets)
	subject := strings.TrimSpace(req.Email.Subject)

	texts := [domain.DraftVariantCount]string{
		joinParagraphs(greeting, p.ack+" "+p.followUp, p.signOff),
		joinParagraphs(greeting, subjectLine(p, subject)+inlineSnippets(snippets)+" "+p.followUp, p.closing, p.signOff),
		joinParagraphs(greeting, subjectLine(p, subject)+" "+p.detail, bulletSnippets(p.lead, snippets), p.followUp+" "+p.closing, p.signOff),
	}

	variants := make([]domain.DraftVariant, 0, len(texts))
	for _, text := range texts {
		variants = append(variants, domain.DraftVariant{
			Text:              text,
			Tokens:            domain.EstimateTokens(text),
			EstimatedSendTime: domain.EstimateSendTime(text),
		})
	}
	return domain.DraftReply{Variants: variants}
}

func subjectLine(p tonePhrasing, subject string) string {
	if subject == "" {
		return p.ack
	}
	return fmt.Sprintf(p.subjectRe, subject)
}

func inlineSnippets(snippets []string) string {
	if len(snippets) == 0 {
		return ""
	}
	parts := make([]string, 0, len(snippets))
	for _, s := range snippets {
		parts = append(parts, sentence(s))
	}
	return " " + strings.Join(parts, " ")
}

func bulletSnippets(lead string, snippets []string) string {
	if len(snippets) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lead)
	for _, s := range snippets {
		b.WriteString("\n- ")
		b.WriteString(s)
	}
	return b.String()
}

// sentence capitalizes s and terminates it with a period when it has no punctuation.
func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}

func joinParagraphs(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

func trimmedSnippets(snippets []string) []string {
	var out []string
	for _, s := range snippets {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// recipientName derives a first name from "Name <addr>" or the address local part.
func recipientName(sender string) string {
	sender = strings.TrimSpace(sender)
	if i := strings.Index(sender, "<"); i > 0 {
		if fields := strings.Fields(strings.Trim(sender[:i], `" `)); len(fields) > 0 {
			return fields[0]
		}
	}
	sender = strings.Trim(sender, "<>")
	if i := strings.Index(sender, "@"); i >= 0 {
		sender = sender[:i]
	}
	name := strings.FieldsFunc(sender, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+' || unicode.IsSpace(r)
	})
	if len(name) == 0 {
		return "there"
	}
	r, size := utf8.DecodeRuneInString(name[0])
	return string(unicode.ToUpper(r)) + name[0][size:]
}
