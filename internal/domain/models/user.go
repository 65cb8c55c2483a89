package models

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID       int64  `json:"-"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Token is the bearer credential returned by register and login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}
