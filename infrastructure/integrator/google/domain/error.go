package googledomain

type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *ErrorResponse) IsUnauthenticated() bool {
	return e.Error.Status == "UNAUTHENTICATED" || e.Error.Code == 401
}

func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error.Status == "RESOURCE_EXHAUSTED" || e.Error.Code == 429
}

// IsUnavailable cobre falhas transitórias do lado do Google
func (e *ErrorResponse) IsUnavailable() bool {
	return e.Error.Status == "UNAVAILABLE" || e.Error.Status == "DEADLINE_EXCEEDED" || e.Error.Status == "INTERNAL"
}
