package server

import (
	"errors"
	"time"

	"github.com/lox/niuniu/internal/deck"
	"github.com/lox/niuniu/niuniu"
)

// Error codes returned to clients
const (
	CodeInvalidMessage   = "invalid_message"
	CodeInvalidCard      = "invalid_card"
	CodeWrongHandSize    = "wrong_hand_size"
	CodeValueOutOfRange  = "value_out_of_range"
	CodeMethodNotAllowed = "method_not_allowed"
)

// EvaluateRequest asks for one hand to be evaluated. Cards holds exactly
// five tokens, one card each: 1-10, A, J, Q, K.
type EvaluateRequest struct {
	Cards     []string `json:"cards"`
	RequestID string   `json:"requestId,omitempty"`
}

// EvaluateResponse carries a result, or an error when the hand was rejected.
// Triple and Pair are positions in the submitted hand.
type EvaluateResponse struct {
	RequestID   string              `json:"requestId,omitempty"`
	Hand        []string            `json:"hand,omitempty"`
	HasNiu      bool                `json:"hasNiu"`
	Score       int                 `json:"score"`
	IsDouble    bool                `json:"isDouble"`
	IsNiuNiu    bool                `json:"isNiuNiu"`
	Triple      []int               `json:"triple,omitempty"`
	Pair        []int               `json:"pair,omitempty"`
	Variant     []int               `json:"variant,omitempty"`
	Swapped     bool                `json:"swapped"`
	Changes     []niuniu.RankChange `json:"changes,omitempty"`
	EvaluatedAt time.Time           `json:"evaluatedAt"`
	Error       *ErrorData          `json:"error,omitempty"`
}

// ErrorData describes a rejected request
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewResponse converts an evaluation result into its wire form
func NewResponse(requestID string, h niuniu.Hand, r niuniu.Result, at time.Time) *EvaluateResponse {
	resp := &EvaluateResponse{
		RequestID:   requestID,
		Hand:        make([]string, len(h)),
		HasNiu:      r.HasNiu,
		Score:       r.Score,
		IsDouble:    r.IsDouble,
		IsNiuNiu:    r.IsNiuNiu(),
		Triple:      r.Triple,
		Pair:        r.Pair,
		Swapped:     r.Swapped,
		Changes:     r.Changes,
		EvaluatedAt: at,
	}
	for i, c := range h {
		resp.Hand[i] = c.String()
	}
	if r.Variant != nil {
		resp.Variant = r.Variant[:]
	}
	return resp
}

// NewErrorResponse builds a response for a rejected request
func NewErrorResponse(requestID, code, message string, at time.Time) *EvaluateResponse {
	return &EvaluateResponse{
		RequestID:   requestID,
		EvaluatedAt: at,
		Error:       &ErrorData{Code: code, Message: message},
	}
}

// Evaluate parses and evaluates a request
func Evaluate(req EvaluateRequest, at time.Time) *EvaluateResponse {
	h, err := deck.ParseEach(req.Cards)
	if err != nil {
		return NewErrorResponse(req.RequestID, errorCode(err), err.Error(), at)
	}
	return NewResponse(req.RequestID, h, niuniu.EvaluateHand(h), at)
}

func errorCode(err error) string {
	var perr *deck.ParseError
	switch {
	case errors.As(err, &perr):
		return CodeInvalidCard
	case errors.Is(err, niuniu.ErrWrongHandSize):
		return CodeWrongHandSize
	case errors.Is(err, niuniu.ErrValueOutOfRange):
		return CodeValueOutOfRange
	default:
		return CodeInvalidMessage
	}
}
