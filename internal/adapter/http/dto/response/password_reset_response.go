package response

// PasswordResetSentResponse is returned for every send request, known
// address or not.
type PasswordResetSentResponse struct {
	Message string `json:"message"`
}

type PasswordResetVerifyResponse struct {
	Valid bool `json:"valid"`
}
