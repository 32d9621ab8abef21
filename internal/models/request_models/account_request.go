package request_models

type SignUpRequest struct {
	DisplayName string `form:"display_name" json:"display_name" binding:"required,min=2,max=50"`
	Email       string `form:"email" json:"email" binding:"required,email,max=50"`
	Password    string `form:"password" json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type DisplayNamePatchRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=2,max=50"`
}

type PasswordPatchRequest struct {
	PresentPassword string `json:"present_password" binding:"required,min=6"`
	ChangedPassword string `json:"changed_password" binding:"required,min=6"`
}
