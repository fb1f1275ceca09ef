package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type Health struct {
	Status  string `json:"status"`
	Batches int    `json:"batches"`
}
