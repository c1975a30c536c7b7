// File: cmd/service/main.go
// @title        Session Guard API
// @version      1.0
// @description  Session 登入、角色 guard 與 token 簽發的後端 API 文件
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name sid
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
