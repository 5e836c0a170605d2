package main

import (
	"fastcat.org/go/workshop/cmd"
	"fastcat.org/go/workshop/config"
	"fastcat.org/go/workshop/instance"
	"fastcat.org/go/workshop/server"
)

// hello answers every request with "Hello from $NAME" on port 3000.
func main() {
	instance.SetAppName("hello")
	cmd.Main(cmd.App[config.Hello]{
		Short: "plain-text hello server on port 3000",
		Load:  config.LoadHello,
		Serve: server.ServeHello,
	})
}
