// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command yamssd is a thin HTTP request dispatcher over package rpc's
// Service — the network façade spec.md §1 treats as an external
// collaborator, kept to the minimum needed to exercise job.Registry and
// package rpc end to end.
package main

import (
	"encoding/json"
	"flag"
	"net/http"

	"github.com/cpmech/gosl/io"

	"github.com/dynasolve/yamss/config"
	"github.com/dynasolve/yamss/job"
	"github.com/dynasolve/yamss/rpc"
)

func main() {
	addr := flag.String("addr", ":8910", "listen address")
	baseDir := flag.String("base-dir", "/tmp/yamssd", "job working directory root")
	flag.Parse()

	registry := job.NewRegistry(*baseDir, job.NewHTTPTransporter(), config.Build)
	svc := rpc.NewService(registry)

	http.HandleFunc("/create", func(w http.ResponseWriter, req *http.Request) {
		var in struct{ URL string }
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			writeFault(w, err)
			return
		}
		key, err := svc.Create(in.URL)
		if err != nil {
			writeFault(w, err)
			return
		}
		writeJSON(w, map[string]string{"job": string(key)})
	})

	http.HandleFunc("/run", func(w http.ResponseWriter, req *http.Request) {
		key := job.Key(req.URL.Query().Get("job"))
		if err := svc.Initialize(key); err != nil {
			writeFault(w, err)
			return
		}
		if err := svc.Run(key); err != nil {
			writeFault(w, err)
			return
		}
		if err := svc.Finalize(key); err != nil {
			writeFault(w, err)
			return
		}
		writeJSON(w, map[string]bool{"ok": true})
	})

	http.HandleFunc("/release", func(w http.ResponseWriter, req *http.Request) {
		key := job.Key(req.URL.Query().Get("job"))
		svc.Release(key)
		writeJSON(w, map[string]bool{"ok": true})
	})

	io.Pf("yamssd listening on %s (jobs under %s)\n", *addr, *baseDir)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		io.PfRed("ERROR: %v\n", err)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeFault(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	writeJSON(w, map[string]string{"error": err.Error()})
}
