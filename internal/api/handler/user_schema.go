package handler

// fieldError is the error item shape used in every 4xx response body.
type fieldError struct {
	Value string `json:"value"`
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Password string `json:"password" validate:"required,min=4,max=16"`
	Role     string `json:"role"     validate:"required,oneof=seller buyer"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Password string `json:"password" validate:"required,min=4,max=16"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
