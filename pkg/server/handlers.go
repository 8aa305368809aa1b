package server

import (
	"Shelf/handler"
)

type Handlers struct {
	Health     *handler.Health
	Storefront *handler.Storefront
	AdminAuth  *handler.AdminAuth
	Admin      *handler.Admin
	Product    *handler.Product
	Tag        *handler.Tag
	Setting    *handler.Setting
}
