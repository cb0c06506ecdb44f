package server

import (
	"Circle/handler"
)

type Handlers struct {
	User   *handler.User
	Follow *handler.Follow
}
