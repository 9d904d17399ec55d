package request

type PasswordResetSendRequest struct {
	Email string `json:"email" binding:"required"`
}

type PasswordResetVerifyRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type PasswordResetConfirmRequest struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}
