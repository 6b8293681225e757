package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

type ResponseKind int

const (
	ResponseMalformed ResponseKind = iota
	ResponseChoice
	ResponseText
)

func (k ResponseKind) String() string {
	switch k {
	case ResponseChoice:
		return "choice"
	case ResponseText:
		return "text"
	default:
		return "malformed"
	}
}

// Response is a submitted answer value. Exactly one of Index or Text is
// meaningful, selected by Kind. Raw keeps the value as it was received.
type Response struct {
	Kind  ResponseKind
	Index int
	Text  string
	Raw   string
}

var ErrInvalidOptionOrder = errors.New("option order is not a permutation of the question's options")

func ChoiceResponse(index int) Response {
	return Response{Kind: ResponseChoice, Index: index, Raw: strconv.Itoa(index)}
}

func TextResponse(text string) Response {
	return Response{Kind: ResponseText, Text: text, Raw: text}
}

func MalformedResponse(raw string) Response {
	return Response{Kind: ResponseMalformed, Raw: raw}
}

// DecodeResponse resolves a loosely typed JSON answer against the question
// type it answers. Choice answers accept an integral number or a numeric
// string; text answers accept a string or a bare number. Anything else
// decodes to a malformed response, which grades as incorrect.
func DecodeResponse(t QuestionType, raw json.RawMessage) Response {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return MalformedResponse("")
	}

	var str string
	isString := trimmed[0] == '"'
	if isString {
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return MalformedResponse(string(trimmed))
		}
	}

	switch t {
	case TypeChoice:
		literal := string(trimmed)
		if isString {
			literal = strings.TrimSpace(str)
		}
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
			f > math.MaxInt32 || f < math.MinInt32 {
			return MalformedResponse(rawString(trimmed, str, isString))
		}
		resp := ChoiceResponse(int(f))
		resp.Raw = rawString(trimmed, str, isString)
		return resp
	case TypeText:
		if isString {
			return TextResponse(str)
		}
		if _, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
			return TextResponse(string(trimmed))
		}
		return MalformedResponse(string(trimmed))
	default:
		return MalformedResponse(rawString(trimmed, str, isString))
	}
}

func rawString(trimmed []byte, str string, isString bool) string {
	if isString {
		return str
	}
	return string(trimmed)
}

// Remap translates a choice response given as a displayed position into the
// canonical option index using order, where order[k] is the canonical index
// shown at position k. An invalid order is an error; a position outside the
// displayed range degrades to a malformed response. Non-choice responses are
// returned unchanged.
func (r Response) Remap(order []int, optionCount int) (Response, error) {
	if err := validateOrder(order, optionCount); err != nil {
		return r, err
	}
	if r.Kind != ResponseChoice {
		return r, nil
	}
	canonical, err := ResolveDisplayed(order, r.Index)
	if err != nil {
		return MalformedResponse(r.Raw), nil
	}
	return ChoiceResponse(canonical), nil
}
