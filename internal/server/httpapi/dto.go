package httpapi

// Request and response bodies for the JSON API. Request fields that must
// be distinguishable from their zero value are pointers, so "absent" and
// "zero" do not collapse into each other.

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	FullName    string `json:"full_name"`
	AccessToken string `json:"access_token"`
}

type createRunRequest struct {
	Name string `json:"name"`
}

type runCreatedResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
}

type runEndedResponse struct {
	Message string `json:"message"`
	EndTime string `json:"end_time"`
}

type recordSampleRequest struct {
	UsagePercent *float64 `json:"usage_percent"`
}

type sampleCreatedResponse struct {
	Message      string  `json:"message"`
	CPUUsageID   int64   `json:"cpu_usage_id"`
	TestRunID    int64   `json:"test_run_id"`
	UsagePercent float64 `json:"usage_percent"`
}

type sampleItem struct {
	ID           int64   `json:"id"`
	UsagePercent float64 `json:"usage_percent"`
	Timestamp    string  `json:"timestamp"`
}

type sampleListResponse struct {
	TestRunID   int64        `json:"test_run_id"`
	TestRunName string       `json:"test_run_name"`
	CPUUsage    []sampleItem `json:"cpu_usage"`
}

type messageResponse struct {
	Message string `json:"message"`
}
