package client

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/letsssgooo/quizMaster/internal/domain/models"
)

// categoryCodes maps quiz categories to Open Trivia DB category ids.
var categoryCodes = map[models.Category]int{
	models.CategoryGeneral:       9,
	models.CategoryCommunication: 25,
	models.CategoryAptitude:      19,
	models.CategoryCoding:        18,
}

// CategoryCode возвращает код категории Open Trivia DB.
// Для неизвестной категории используется general.
func CategoryCode(category models.Category) int {
	return categoryCodes[category.OrGeneral()]
}

// HTTPClient реализует источник вопросов через HTTP API Open Trivia DB.
type HTTPClient struct {
	baseURL    string
	amount     int
	timeout    time.Duration
	httpClient *http.Client
}

// NewHTTPClient создаёт нового HTTP клиента Open Trivia DB.
// Пустые значения заменяются значениями по умолчанию.
func NewHTTPClient(baseURL string, amount int, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if amount <= 0 {
		amount = DefaultAmount
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPClient{
		baseURL:    baseURL,
		amount:     amount,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// FetchQuestions загружает вопросы категории category.
// Любая ошибка оборачивает models.ErrSourceUnavailable.
func (c *HTTPClient) FetchQuestions(ctx context.Context, category models.Category) ([]models.QuestionRecord, error) {
	raw, err := c.doRequest(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSourceUnavailable, err)
	}

	questions := make([]models.QuestionRecord, 0, len(raw))
	for _, q := range raw {
		incorrect := make([]string, 0, len(q.IncorrectAnswers))
		for _, a := range q.IncorrectAnswers {
			incorrect = append(incorrect, html.UnescapeString(a))
		}

		questions = append(questions, models.QuestionRecord{
			Question:         html.UnescapeString(q.Question),
			CorrectAnswer:    html.UnescapeString(q.CorrectAnswer),
			IncorrectAnswers: incorrect,
			Difficulty:       q.Difficulty,
		})
	}

	return questions, nil
}

// doRequest выполняет запрос к Open Trivia DB.
// Возвращает вопросы в сыром виде в случае успеха.
func (c *HTTPClient) doRequest(ctx context.Context, category models.Category) ([]Question, error) {
	ctx, cancelFunc := context.WithTimeout(ctx, c.timeout)
	defer cancelFunc()

	query := url.Values{}
	query.Set("amount", strconv.Itoa(c.amount))
	query.Set("category", strconv.Itoa(CategoryCode(category)))
	query.Set("type", "multiple")

	link := c.baseURL + "?" + query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to do get request for url %s: %w", link, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response status code %d for url %s", resp.StatusCode, link)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result Response
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.ResponseCode != codeSuccess {
		return nil, fmt.Errorf("client api error: %s", describeCode(result.ResponseCode))
	}

	return result.Results, nil
}

func describeCode(code int) string {
	switch code {
	case codeNoResults:
		return "not enough questions"
	case codeInvalidParam:
		return "invalid parameter"
	case codeTokenNotFound:
		return "session token not found"
	case codeTokenEmpty:
		return "session token exhausted"
	case codeRateLimit:
		return "rate limit exceeded"
	default:
		return "response code " + strconv.Itoa(code)
	}
}
