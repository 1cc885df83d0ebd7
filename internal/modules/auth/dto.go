package auth

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Profile   string `json:"profile,omitempty"`
	State     string `json:"state,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Profile   string  `json:"profile"`
	State     string  `json:"state,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Following []int64 `json:"following"`
	Followers []int64 `json:"followers"`
}
