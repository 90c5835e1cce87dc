package core

// Module is a feature module registered in the injector. Building a module mounts its API
// handlers on the shared servers.
type Module interface {
	Name() string
	Version() string
}
