package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zostay/go-params/config"
	"github.com/zostay/go-params/httpparams"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP server that echoes back the parameters of each request",
		Args:  cobra.NoArgs,
		RunE:  RunServe,
	}

	serveAddr    string
	serveVerbose bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "address to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "log every request")
}

func RunServe(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	var logger *zap.Logger
	if serveVerbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("listening", zap.String("addr", serveAddr))
	return http.ListenAndServe(serveAddr, newRouter(c, logger))
}

// newRouter returns the echo server routes.
func newRouter(c *config.Config, logger *zap.Logger) http.Handler {
	opts := append(c.Options(), httpparams.WithRouteParams(), httpparams.WithLogger(logger))
	echo := httpparams.Middleware(opts...)

	r := chi.NewRouter()
	r.With(echo).Get("/echo", handleEcho(logger))
	r.With(echo).Post("/echo", handleEcho(logger))
	r.With(echo).Get("/echo/{name}", handleEcho(logger))
	return r
}

// handleEcho writes the request parameters as a JSON object of name to values.
func handleEcho(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, ok := httpparams.FromContext(r.Context())
		if !ok {
			http.Error(w, "no parameters", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(values(ps)); err != nil {
			logger.Error("failed to encode response", zap.Error(err))
		}
	}
}
