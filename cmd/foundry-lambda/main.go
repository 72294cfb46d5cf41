// Command foundry-lambda serves the evaluator behind an AWS Lambda
// Function URL. The request body is the blueprint JSON accepted by
// blueprint.ParseJSON, with optional "a", "b" and "subset" fields:
//
//	{"a": 24, "b": 32, "subset": [1, 2], "blueprints": [{"id": 1, ...}]}
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tidwall/gjson"

	"github.com/katalvlaran/foundry/blueprint"
	"github.com/katalvlaran/foundry/evaluate"
	"github.com/katalvlaran/foundry/search"
	"github.com/katalvlaran/foundry/yieldcache"
)

// yields survives across invocations of a warm container.
var yields = yieldcache.New(time.Hour, 10*time.Minute)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type modelResult struct {
	ID      int  `json:"id"`
	Horizon int  `json:"horizon"`
	Yield   int  `json:"yield"`
	Cached  bool `json:"cached"`
}

type evaluateResult struct {
	QualitySum int64         `json:"qualitySum"`
	Product    int64         `json:"product"`
	Quality    []modelResult `json:"quality"`
	Selected   []modelResult `json:"selected"`
	TimeMs     int64         `json:"timeMs"`
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	models, err := blueprint.ParseJSON(body)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	a, b := 24, 32
	if err = optionalInt(body, "a", &a); err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	if err = optionalInt(body, "b", &b); err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	subset, err := optionalIDs(body, "subset")
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	s, err := evaluate.Evaluate(ctx, models, a, b, subset, evaluate.WithCache(yields))
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			code = http.StatusGatewayTimeout
		} else if errors.Is(err, evaluate.ErrUnknownModel) {
			code = http.StatusNotFound
		} else if !errors.Is(err, search.ErrBadHorizon) && !errors.Is(err, evaluate.ErrDuplicateModel) {
			code = http.StatusInternalServerError
		}
		return errResp(code, err.Error())
	}

	resp := evaluateResult{
		QualitySum: s.QualitySum,
		Product:    s.Product,
		Quality:    rows(s.Quality),
		Selected:   rows(s.Selected),
		TimeMs:     time.Since(start).Milliseconds(),
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

// optionalInt overwrites *dst with the integer at path, if present.
func optionalInt(body, path string, dst *int) error {
	v := gjson.Get(body, path)
	if !v.Exists() {
		return nil
	}
	n, err := blueprint.JSONInt(v)
	if err != nil {
		return fmt.Errorf("field %s: %w", path, err)
	}
	*dst = n

	return nil
}

// optionalIDs reads an array of integer ids at path; absent means nil.
func optionalIDs(body, path string) ([]int, error) {
	v := gjson.Get(body, path)
	if !v.Exists() {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("field %s: %w: expected an array", path, blueprint.ErrSyntax)
	}
	items := v.Array()
	ids := make([]int, 0, len(items))
	for i, x := range items {
		id, err := blueprint.JSONInt(x)
		if err != nil {
			return nil, fmt.Errorf("field %s[%d]: %w", path, i, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func rows(ys []evaluate.ModelYield) []modelResult {
	out := make([]modelResult, len(ys))
	for i, my := range ys {
		out[i] = modelResult{ID: my.ID, Horizon: my.Horizon, Yield: my.Yield, Cached: my.Cached}
	}

	return out
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
