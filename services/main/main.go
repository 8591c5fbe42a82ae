package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"store-monitor/logger"
	"store-monitor/services/context"
	"store-monitor/services/routes"
	"store-monitor/services/utils"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func main() {
	ctx, err := context.BuildContext()
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}

	muxRouter := mux.NewRouter()
	router := utils.NewSwaggerRouter(muxRouter, "Store Monitor API", "0.1.0")
	routes.AddReportRoutes(router, ctx)
	routes.AddDataRoutes(router, ctx)

	router.Finalize()

	handler := handlers.CombinedLoggingHandler(os.Stdout, muxRouter)
	handler = handlers.CORS(
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
	)(handler)

	address := ctx.Config().Services.Address
	srv := &http.Server{
		Handler: handler,
		Addr:    address,
		// Good practice: enforce timeouts for servers you create -- config?
		// WriteTimeout: 15 * time.Second,
		// ReadTimeout:  15 * time.Second,
	}

	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server on %s", address)
		err := srv.ListenAndServe()
		if err != nil {
			logger.Error("Server error: %v", err)
		}
	}()

	<-cancelChan
	logger.Info("Shutting down server")
}
