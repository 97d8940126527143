package healthchecks

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
)

type Checker func() error

func Bind(router *mux.Router, checks map[string]Checker) {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		body := ""
		for _, name := range names {
			err := checks[name]()
			if err != nil {
				body = body + fmt.Sprintf("%s error: %s\n", name, err)
			}
		}
		if body != "" {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "%s", body)
		} else {
			w.WriteHeader(http.StatusOK)
		}
	}).Methods("GET")

	router.HandleFunc("/healthcheck/http", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	router.HandleFunc("/healthcheck/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		check, ok := checks[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		err := check()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "%s error: %s", name, err)
		} else {
			w.WriteHeader(http.StatusOK)
		}
	}).Methods("GET")
}
