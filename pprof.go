package main

import (
	"net/http"
	_ "net/http/pprof"
)

const PProfAddr = "localhost:6060"

func StartPProf() {
	DebugPutsPersist("pprof", PProfAddr)
	go func() {
		InfoLogger.Printf("initializing pprof at %s", PProfAddr)
		InfoLogger.Print(http.ListenAndServe(PProfAddr, nil))
	}()
}
