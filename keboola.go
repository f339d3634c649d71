package keboola

import (
	"fmt"
	"net/http"
	"time"

	"github.com/keboola-community/keboola-go/appbase"
	"github.com/keboola-community/keboola-go/utils"
	"go.uber.org/atomic"
)

const ClientServiceId = "keboola"

// DefaultTimeoutSeconds is applied when the config carries no timeout
const DefaultTimeoutSeconds = 60

// Client is a facade over the platform's job queue and table storage APIs.
// It owns one JobsClient and one TablesClient sharing the same normalized
// base URL and token. Clients hold only immutable configuration after
// construction and are safe for concurrent use.
type Client struct {
	appbase.Service
	config *ClientConfig

	Jobs   *JobsClient
	Tables *TablesClient

	httpClient *http.Client
	closed     *atomic.Bool
}

// NewClient creates a Client for the platform reachable at baseURL,
// authenticating with the storage API token
func NewClient(baseURL, token string) (*Client, error) {
	return NewClientFromConfig(&ClientConfig{BaseURL: baseURL, Token: token})
}

// NewClientFrom creates a Client from a config object that can be a map,
// a json or yaml string, or a ClientConfig value
func NewClientFrom(config any) (*Client, error) {
	clientConfig := ClientConfig{}
	if err := utils.ParseObject(config, &clientConfig); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %v", err)
	}
	return NewClientFromConfig(&clientConfig)
}

func NewClientFromConfig(config *ClientConfig) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := config.PostInit(nil); err != nil {
		return nil, err
	}
	httpClient := &http.Client{
		Timeout: time.Duration(utils.Nvl(config.TimeoutSeconds, DefaultTimeoutSeconds)) * time.Second,
	}
	closed := atomic.NewBool(false)
	rq := &requester{httpClient: httpClient, token: config.Token, closed: closed}
	client := &Client{
		Service:    appbase.NewServiceBase(ClientServiceId),
		config:     config,
		Jobs:       newJobsClient(config.BaseURL, rq),
		Tables:     newTablesClient(config.BaseURL, rq),
		httpClient: httpClient,
		closed:     closed,
	}
	client.Debugf("initialized client instance %s for %s", config.InstanceId, config.BaseURL)
	return client, nil
}

// BaseURL returns the normalized platform URL this client talks to
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Close marks the client closed and releases idle connections. Requests
// issued after Close fail.
func (c *Client) Close() error {
	c.closed.Store(true)
	c.httpClient.CloseIdleConnections()
	return nil
}
