package client

import (
	"time"
)

// Response представляет ответ Open Trivia DB.
type Response struct {
	ResponseCode int        `json:"response_code"`
	Results      []Question `json:"results"`
}

// Question представляет вопрос в формате Open Trivia DB.
// Тексты приходят с HTML-сущностями.
type Question struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Коды ответа Open Trivia DB
const (
	codeSuccess       = 0
	codeNoResults     = 1
	codeInvalidParam  = 2
	codeTokenNotFound = 3
	codeTokenEmpty    = 4
	codeRateLimit     = 5
)

// Значения по умолчанию
const (
	DefaultBaseURL = "https://opentdb.com/api.php"
	DefaultAmount  = 30
	DefaultTimeout = 5 * time.Second
)
