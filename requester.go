package keboola

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/keboola-community/keboola-go/errork"
	"go.uber.org/atomic"
)

const authTokenHeader = "X-StorageApi-Token"

// responseJson decodes numbers as json.Number because numeric ids can exceed
// the float64 integer range
var responseJson = jsoniter.Config{UseNumber: true}.Froze()

// requester issues authenticated platform requests and translates unexpected
// status codes into RequestFailedError carrying the response text and, when a
// body was sent, the outgoing request body
type requester struct {
	httpClient *http.Client
	token      string
	closed     *atomic.Bool
}

type response struct {
	statusCode int
	body       []byte
}

// request issues a platform call expecting a non-error status code
func (r *requester) request(method, url string, payload any) (*response, error) {
	return r.do(method, url, payload, func(statusCode int) bool { return statusCode < 400 })
}

// requestExpecting issues a platform call expecting one exact status code
func (r *requester) requestExpecting(method, url string, payload any, expectedStatus int) (*response, error) {
	return r.do(method, url, payload, func(statusCode int) bool { return statusCode == expectedStatus })
}

func (r *requester) do(method, url string, payload any, expected func(int) bool) (*response, error) {
	if r.closed.Load() {
		return nil, fmt.Errorf("attempt to use closed Keboola client instance")
	}
	var requestBody []byte
	var bodyReader io.Reader
	if payload != nil {
		var err error
		requestBody, err = jsoniter.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(requestBody)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(authTokenHeader, r.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if !expected(res.StatusCode) {
		return nil, errork.RequestFailedError.New("%s %s failed: status: %v body: %s", method, url, res.StatusCode, string(body)).
			WithProperty(errork.APIInfo, &errork.ErrorPayload{
				Method:      method,
				Endpoint:    url,
				StatusCode:  res.StatusCode,
				Response:    string(body),
				RequestBody: string(requestBody),
			})
	}
	return &response{statusCode: res.StatusCode, body: body}, nil
}

// idToString normalizes ids the platform returns either as numbers or strings
func idToString(id any) string {
	switch typed := id.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case json.Number:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
