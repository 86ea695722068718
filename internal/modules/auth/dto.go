package auth

type RegisterStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
	City     string `json:"city"`
	College  string `json:"college"`
}

type RegisterOwnerRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	City     string `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	College string `json:"college,omitempty"`
}

// UserPublic is the user as returned by auth endpoints, password never included.
type UserPublic struct {
	ID      int64  `json:"id"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	College string `json:"college,omitempty"`
}
