package main

import (
	"fastcat.org/go/workshop/cmd"
	"fastcat.org/go/workshop/config"
	"fastcat.org/go/workshop/instance"
	"fastcat.org/go/workshop/server"
)

// page serves the workshop info page with pod, version, hostname and a count
// of requests served.
func main() {
	instance.SetAppName("page")
	cmd.Main(cmd.App[config.Page]{
		Short: "html info page server, listening on $PORT",
		Load:  config.LoadPage,
		Serve: server.ServePage,
	})
}
