package health

import "time"

// Version reported by the health endpoint.
const Version = "2.0.0"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Response is the health payload.
type Response struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Status returns the current health payload.
func (s *Service) Status() Response {
	return Response{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
	}
}
