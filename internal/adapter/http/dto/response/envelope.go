package response

// Result is the success half of the response envelope.
type Result struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func OK(data any) Result {
	return Result{Success: true, Data: data}
}
