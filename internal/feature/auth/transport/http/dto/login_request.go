package dto

// LoginReq represents the form body for the /auth/login endpoint.
// The email travels in the OAuth2-style "username" field, matching the
// password-grant wire format.
type LoginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
