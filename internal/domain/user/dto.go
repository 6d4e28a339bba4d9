package user

type CreateUserInput struct {
	Username string  `form:"username" json:"username" binding:"required,min=3,max=50"`
	Password string  `form:"password" json:"password" binding:"required,min=6"`
	Email    *string `form:"email" json:"email" binding:"omitempty,email"`
	FullName *string `form:"full_name" json:"full_name"`
	Role     *string `form:"role" json:"role" binding:"omitempty,oneof=customer advisor"`
}

type UpdateUserInput struct {
	OldPassword *string `form:"old_password" json:"old_password"`
	Password    *string `form:"password" json:"password"`
	Email       *string `form:"email" json:"email" binding:"omitempty,email"`
	FullName    *string `form:"full_name" json:"full_name"`
}
