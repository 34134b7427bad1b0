// controller/controllers.go
package controller

import "github.com/swarnapay/api/service"

type Controllers struct {
	User *UserController
	Role *RoleController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		User: NewUserController(services.User),
		Role: NewRoleController(services.Role),
	}
}
