package auth

const (
	errorTokenEmpty        string = "error.token.empty"
	errorTokenRequestError string = "error.token.request-error"
)

type GoogleIdentityPlatformErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
