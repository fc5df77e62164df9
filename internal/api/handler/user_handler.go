package handler

import (
	"Parchment/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc   service.UserService
	changeLog service.ChangeLogService
}

func NewUserHandler(userSvc service.UserService, changeLog service.ChangeLogService) *UserHandler {
	return &UserHandler{
		userSvc:   userSvc,
		changeLog: changeLog,
	}
}

func (s *UserHandler) CreateUser(c *gin.Context) {
	createEntity(c, s.changeLog, entityUsers, s.userSvc.CreateUser)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	getEntity(c, s.userSvc.GetUser)
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	updateEntity(c, s.changeLog, entityUsers, s.userSvc.UpdateUser)
}

func (s *UserHandler) DeleteUser(c *gin.Context) {
	deleteEntity(c, s.changeLog, entityUsers, s.userSvc.DeleteUser)
}
