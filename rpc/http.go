package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/storage"
	"github.com/dimfeld/httptreemux"
	"github.com/gorilla/handlers"
	"github.com/unrolled/render"
)

type R struct {
	Custom *config.Custom
	Store  storage.Store
}

type Call struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func NewRouter(custom *config.Custom, store storage.Store) *httptreemux.TreeMux {
	router, impl := httptreemux.New(), &R{Custom: custom, Store: store}
	router.POST("/", impl.handle)
	registerHanders(router)
	return router
}

func registerHanders(router *httptreemux.TreeMux) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		render.New().JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		logger.Errorf("PANIC %v\n%s\n", rcv, debug.Stack())
		err := fmt.Errorf("panic %v", rcv)
		render.New().JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
}

func (impl *R) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(r.Body)
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		render.New().JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	logger.Debugf("RPC %s %v\n", call.Method, call.Params)

	var result interface{}
	var err error
	switch call.Method {
	case "getinfo":
		result, err = getInfo(impl.Custom, impl.Store)
	case "calc":
		result, err = calc(call.Params)
	case "round":
		result, err = roundValue(impl.Custom, call.Params)
	case "decimal":
		result, err = decimalValue(impl.Custom, call.Params)
	case "setvalue":
		result, err = setValue(impl.Store, call.Params)
	case "getvalue":
		result, err = getValue(impl.Store, call.Params)
	case "listvalues":
		result, err = listValues(impl.Store)
	case "listdatasets":
		result, err = listDatasets(impl.Store)
	case "sumdataset":
		result, err = sumDataset(impl.Custom, impl.Store, call.Params)
	default:
		err = fmt.Errorf("invalid method %s", call.Method)
	}
	if err != nil {
		render.New().JSON(w, http.StatusOK, map[string]interface{}{"error": err.Error()})
	} else {
		render.New().JSON(w, http.StatusOK, result)
	}
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,POST")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}

func NewServer(custom *config.Custom, store storage.Store, port int) *http.Server {
	router := NewRouter(custom, store)
	handler := handleCORS(router)
	handler = handlers.ProxyHeaders(handler)
	return &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: handler}
}

func StartHTTP(custom *config.Custom, store storage.Store, port int) error {
	server := NewServer(custom, store, port)
	logger.Printf("RPC server listening on %s\n", server.Addr)
	return server.ListenAndServe()
}
