package keboola

import (
	"net/http"
	"strings"

	"github.com/keboola-community/keboola-go/appbase"
)

const JobsServiceId = "keboola.jobs"

// Job is a raw job record as returned by the platform. Fields beyond id and
// status pass through untyped.
type Job map[string]any

func (j Job) ID() string {
	return idToString(j["id"])
}

// Status returns the job status as reported by the platform. Statuses are
// platform-defined free-form strings, not a closed enum.
func (j Job) Status() string {
	status, _ := j["status"].(string)
	return status
}

// VariableValue overrides one configuration variable for a single run
type VariableValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type JobOptions struct {
	VariableValues []VariableValue
	BranchId       int64
}

type JobOption func(*JobOptions)

// WithVariableValues passes variable overrides to the queued run
func WithVariableValues(values ...VariableValue) JobOption {
	return func(options *JobOptions) {
		options.VariableValues = values
	}
}

// WithBranch queues the run against a development branch
func WithBranch(branchId int64) JobOption {
	return func(options *JobOptions) {
		options.BranchId = branchId
	}
}

type jobRunRequest struct {
	Component          string              `json:"component"`
	Config             int64               `json:"config"`
	Mode               string              `json:"mode"`
	VariableValuesData *variableValuesData `json:"variableValuesData,omitempty"`
	BranchId           int64               `json:"branchId,omitempty"`
}

type variableValuesData struct {
	Values []VariableValue `json:"values"`
}

// JobsClient issues job-queue requests and polls job status. The platform runs
// two independent job subsystems: the queue service and storage API jobs,
// reachable via different roots derived from the same base URL.
type JobsClient struct {
	appbase.Service
	queueURL   string
	storageURL string
	requester  *requester
}

func newJobsClient(baseURL string, requester *requester) *JobsClient {
	return &JobsClient{
		Service:    appbase.NewServiceBase(JobsServiceId),
		queueURL:   strings.ReplaceAll(baseURL, "connection", "queue"),
		storageURL: baseURL + "/v2/storage",
		requester:  requester,
	}
}

// QueueJob queues a run of the component's configuration and returns the
// created job id
func (jc *JobsClient) QueueJob(componentID string, configurationID int64, options ...JobOption) (string, error) {
	jobOptions := &JobOptions{}
	for _, option := range options {
		option(jobOptions)
	}
	runRequest := &jobRunRequest{
		Component: componentID,
		Config:    configurationID,
		Mode:      "run",
	}
	if len(jobOptions.VariableValues) > 0 {
		runRequest.VariableValuesData = &variableValuesData{Values: jobOptions.VariableValues}
	}
	if jobOptions.BranchId != 0 {
		runRequest.BranchId = jobOptions.BranchId
	}
	res, err := jc.requester.request(http.MethodPost, jc.queueURL+"/jobs", runRequest)
	if err != nil {
		return "", err
	}
	job := Job{}
	if err = responseJson.Unmarshal(res.body, &job); err != nil {
		return "", jc.NewError("failed to parse queue job response: %v", err)
	}
	jc.Debugf("queued job %s for component %s config %d", job.ID(), componentID, configurationID)
	return job.ID(), nil
}

// GetJob fetches the full job record from the queue service
func (jc *JobsClient) GetJob(jobID string) (Job, error) {
	return jc.getJob(jc.queueURL + "/jobs/" + jobID)
}

// CheckJobStatus fetches the queue job and returns its status field
func (jc *JobsClient) CheckJobStatus(jobID string) (string, error) {
	job, err := jc.GetJob(jobID)
	if err != nil {
		return "", err
	}
	return job.Status(), nil
}

// GetAPIJob fetches the full job record from the storage API job subsystem
func (jc *JobsClient) GetAPIJob(jobID string) (Job, error) {
	return jc.getJob(jc.storageURL + "/jobs/" + jobID)
}

// CheckAPIJobStatus fetches the storage API job and returns its status field
func (jc *JobsClient) CheckAPIJobStatus(jobID string) (string, error) {
	job, err := jc.GetAPIJob(jobID)
	if err != nil {
		return "", err
	}
	return job.Status(), nil
}

func (jc *JobsClient) getJob(url string) (Job, error) {
	res, err := jc.requester.request(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	job := Job{}
	if err = responseJson.Unmarshal(res.body, &job); err != nil {
		return nil, jc.NewError("failed to parse job response: %v", err)
	}
	return job, nil
}
