package request_models

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
