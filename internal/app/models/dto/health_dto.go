package dto

// PingResponse is returned by the health endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"`
	Status  string `json:"status" example:"success"`
}
