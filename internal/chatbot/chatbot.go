package chatbot

import (
	"encoding/json"
	"os"
	"strings"
)

// QA is one question/answer pair from the chatbot data file.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FallbackAnswer is returned when no Q&A entry matches the input.
const FallbackAnswer = "Sorry, I don't have an answer for that. Please contact our team for more help.\n\n" +
	"You can contact Aqua Blue Group:\n" +
	"Email: abgroupassam@gmail.com\n" +
	"Phone: 0-8403938247, 0-6001175252\n" +
	"Address: Aqua Blue Group Office, Paliguri, Jagiroad, Dist:- Morigaon (Assam), India"

// Service answers visitor questions by keyword matching against a fixed
// Q&A list. Matching is exact first, then substring in either direction.
type Service struct {
	entries []QA
}

func NewService(entries []QA) *Service {
	return &Service{entries: entries}
}

// LoadService reads the Q&A data file. A missing or malformed file yields
// a service that always answers with the contact fallback.
func LoadService(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewService(nil), err
	}

	var entries []QA
	if err := json.Unmarshal(data, &entries); err != nil {
		return NewService(nil), err
	}
	return NewService(entries), nil
}

// Answer resolves the input against the Q&A list.
func (s *Service) Answer(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	lower := strings.ToLower(input)

	for _, qa := range s.entries {
		if strings.ToLower(qa.Question) == lower {
			return qa.Answer
		}
	}
	for _, qa := range s.entries {
		q := strings.ToLower(qa.Question)
		if strings.Contains(lower, q) || strings.Contains(q, lower) {
			return qa.Answer
		}
	}
	return FallbackAnswer
}

// Questions lists the known questions, used as tap-to-ask suggestions.
func (s *Service) Questions() []string {
	out := make([]string, 0, len(s.entries))
	for _, qa := range s.entries {
		out = append(out, qa.Question)
	}
	return out
}
