package app

import "github.com/julienschmidt/httprouter"

// Handler is implemented by anything that mounts routes on the application router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
