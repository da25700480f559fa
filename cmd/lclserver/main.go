package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
)

func main() {
	addr := os.Getenv("LCLSERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger := hclog.New(&hclog.LoggerOptions{Name: "lclserver"})
	srv := newServer(logger)

	router := mux.NewRouter()
	router.HandleFunc("/problems", srv.createProblem).Methods(http.MethodPost)
	router.HandleFunc("/searches", srv.runSearch).Methods(http.MethodPost)
	router.HandleFunc("/searches/{id}/reset", srv.resetSearch).Methods(http.MethodPost)

	logger.Info("listening", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
