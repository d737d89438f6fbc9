// Command api runs the public HTTP server.
package main

import (
	"log"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		log.Fatalf("cannot start server: %s", err)
	}

	log.Printf("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
