package model

type AccessToken struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RegisterRequest struct {
	Name string `json:"name"`
}

type RegisterResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}
