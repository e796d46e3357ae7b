package supervisor

//go:generate go run ./cmd/supervisorgen -o methods_gen.go
