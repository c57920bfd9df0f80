package opentdb

import (
	"context"
	"html"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"

	"trivia-quiz/internal/domain"
)

const (
	DefaultURL     = "https://opentdb.com/api.php"
	DefaultType    = "multiple"
	defaultTimeout = 10 * time.Second
)

// Config selects what the client asks the Open Trivia Database for.
type Config struct {
	URL        string
	Type       string
	Category   int
	Difficulty string
	Timeout    time.Duration
}

// Client is a QuestionSource backed by the Open Trivia Database HTTP API.
// Every Fetch is a single attempt; failures are never retried here.
type Client struct {
	http *req.Client
	cfg  Config
}

func NewClient(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Type == "" {
		cfg.Type = DefaultType
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	httpClient := req.C().
		SetTimeout(cfg.Timeout).
		SetJsonUnmarshal(json.Unmarshal)
	return &Client{http: httpClient, cfg: cfg}
}

type apiResponse struct {
	ResponseCode int            `json:"response_code"`
	Results      *[]apiQuestion `json:"results"`
}

type apiQuestion struct {
	Question         *string   `json:"question"`
	CorrectAnswer    *string   `json:"correct_answer"`
	IncorrectAnswers *[]string `json:"incorrect_answers"`
	Category         string    `json:"category"`
	Difficulty       string    `json:"difficulty"`
}

// Fetch retrieves amount questions.
func (c *Client) Fetch(ctx context.Context, amount int) ([]domain.QuestionRecord, error) {
	request := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("amount", strconv.Itoa(amount)).
		SetQueryParam("type", c.cfg.Type)
	if c.cfg.Category > 0 {
		request.SetQueryParam("category", strconv.Itoa(c.cfg.Category))
	}
	if c.cfg.Difficulty != "" {
		request.SetQueryParam("difficulty", c.cfg.Difficulty)
	}

	resp, err := request.Get(c.cfg.URL)
	if err != nil {
		return nil, multierror.Append(domain.ErrFetch, errors.Wrapf(err, "failed to get `%v`", c.cfg.URL))
	}
	if !resp.IsSuccessState() {
		return nil, multierror.Append(domain.ErrFetch, errors.Errorf("unexpected status code %v from `%v`", resp.GetStatusCode(), c.cfg.URL))
	}
	data, err := resp.ToBytes()
	if err != nil {
		return nil, multierror.Append(domain.ErrFetch, errors.Wrapf(err, "failed to read body of `%v`", c.cfg.URL))
	}

	var body apiResponse
	if err := json.UnmarshalContext(ctx, data, &body); err != nil {
		return nil, multierror.Append(domain.ErrFetch, domain.ErrMalformedData, errors.Wrap(err, "failed to decode questions"))
	}
	if body.ResponseCode != 0 {
		return nil, multierror.Append(domain.ErrFetch, errors.Errorf("question source answered with response_code %d", body.ResponseCode))
	}
	return decodeResults(body)
}

func decodeResults(body apiResponse) ([]domain.QuestionRecord, error) {
	if body.Results == nil {
		return nil, multierror.Append(domain.ErrFetch, domain.ErrMalformedData, errors.New("response has no results"))
	}
	records := make([]domain.QuestionRecord, 0, len(*body.Results))
	for i, q := range *body.Results {
		if q.Question == nil || q.CorrectAnswer == nil || q.IncorrectAnswers == nil {
			return nil, multierror.Append(domain.ErrFetch, domain.ErrMalformedData, errors.Errorf("result %d is missing question fields", i))
		}
		incorrect := make([]string, len(*q.IncorrectAnswers))
		for j, answer := range *q.IncorrectAnswers {
			incorrect[j] = html.UnescapeString(answer)
		}
		records = append(records, domain.QuestionRecord{
			Prompt:           html.UnescapeString(*q.Question),
			CorrectAnswer:    html.UnescapeString(*q.CorrectAnswer),
			IncorrectAnswers: incorrect,
			Category:         html.UnescapeString(q.Category),
			Difficulty:       q.Difficulty,
		})
	}
	return records, nil
}
