package transport

// ProductRequest is the create/update body for products. Pointer
// fields distinguish "absent" from "present but empty" so validation
// can report missing required fields precisely.
type ProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Size        *string  `json:"size"`
	Color       *string  `json:"color"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
}

type CreateUserRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateUserRequest deliberately has no password field: the password
// is immutable through the CRUD surface.
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}
