package errork

import (
	"fmt"
	"strings"

	"github.com/keboola-community/keboola-go/utils"
)

type ErrorPayload struct {
	Method      string
	Endpoint    string
	StatusCode  int
	Response    string
	RequestBody string
}

func (ep *ErrorPayload) String() string {
	var msgParts []string
	if ep.Method != "" {
		msgParts = append(msgParts, fmt.Sprintf("method: %s", ep.Method))
	}
	if ep.Endpoint != "" {
		msgParts = append(msgParts, fmt.Sprintf("endpoint: %s", ep.Endpoint))
	}
	if ep.StatusCode != 0 {
		msgParts = append(msgParts, fmt.Sprintf("status code: %d", ep.StatusCode))
	}
	if ep.Response != "" {
		msgParts = append(msgParts, fmt.Sprintf("response: %s", utils.ShortenStringWithEllipsis(ep.Response, 1000)))
	}
	if ep.RequestBody != "" {
		msgParts = append(msgParts, fmt.Sprintf("request body: %s", utils.ShortenStringWithEllipsis(ep.RequestBody, 1000)))
	}
	if len(msgParts) > 0 {
		return "\n" + strings.Join(msgParts, "\n") + "\n"
	} else {
		return ""
	}
}
