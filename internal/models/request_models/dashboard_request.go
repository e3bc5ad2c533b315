package request_models

type UpdateDashboardRequest struct {
	Stats       map[string]interface{} `json:"stats"`
	Preferences map[string]interface{} `json:"preferences"`
}
