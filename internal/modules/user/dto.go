package user

type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Profile   *string `json:"profile,omitempty"`
	State     *string `json:"state,omitempty" validate:"omitempty,len=2"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}
