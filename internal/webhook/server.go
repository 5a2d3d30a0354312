// Package webhook exposes the trading pipeline over HTTP for alerting
// platforms that deliver trade signals as JSON webhooks.
package webhook

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jptrading/proxytrader/internal/config"
	"github.com/jptrading/proxytrader/internal/logger"
	"github.com/jptrading/proxytrader/internal/types"
	"github.com/jptrading/proxytrader/internal/version"
	"github.com/jptrading/proxytrader/pkg/errors"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// TradingSystem is the pipeline surface the server needs.
type TradingSystem interface {
	Execute(ctx context.Context, intent types.TradeIntent) types.OrderResult
	CheckConnection(ctx context.Context) error
	VerifySymbol(ctx context.Context, symbol string) (types.SymbolCheck, error)
	ListOrders(ctx context.Context) ([]types.ClassifiedOrder, error)
}

// Server routes webhook alerts into the trading system. A nil system is
// tolerated at construction and reported per request, so the HTTP listener
// can come up before credentials are available.
type Server struct {
	system     TradingSystem
	defaults   config.WebhookConfig
	log        *logger.Logger
	httpServer *http.Server
}

// alertPayload is the incoming webhook body. Missing fields fall back to the
// configured defaults; a null quantity is distinct from an explicit zero.
type alertPayload struct {
	Symbol   string `json:"symbol"`
	Action   string `json:"action"`
	Quantity *int   `json:"quantity"`
}

// NewServer creates a webhook server bound to addr.
func NewServer(addr string, system TradingSystem, defaults config.WebhookConfig, log *logger.Logger) *Server {
	s := &Server{
		system:   system,
		defaults: defaults,
		log:      log,
	}

	router := mux.NewRouter()
	router.HandleFunc("/webhook", s.handleWebhook).Methods("POST")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/orders", s.handleOrders).Methods("GET")
	router.HandleFunc("/symbols/{symbol}/check", s.handleSymbolCheck).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks serving HTTP until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.log.Info("webhook server listening", zap.String("addr", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if err := s.ready(); err != nil {
		s.log.Error("webhook received before system initialization", zap.String("request_id", requestID))
		writeJSON(w, http.StatusInternalServerError, types.NewFailureResult(
			types.ErrorKindMalformedPayload, err.Error()))

		return
	}

	var payload alertPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.log.Warn("malformed webhook payload",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusBadRequest, types.NewFailureResult(
			types.ErrorKindMalformedPayload, "request body is not valid JSON"))

		return
	}

	intent := s.applyDefaults(payload)

	s.log.Info("webhook alert received",
		zap.String("request_id", requestID),
		zap.String("symbol", intent.Symbol),
		zap.String("action", string(intent.Action)),
		zap.Int("quantity", intent.Quantity),
	)

	result := s.system.Execute(r.Context(), intent)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}

	writeJSON(w, status, result)
}

// applyDefaults fills absent payload fields from the configured defaults. An
// explicit zero quantity is kept so validation can reject it.
func (s *Server) applyDefaults(payload alertPayload) types.TradeIntent {
	symbol := payload.Symbol
	if symbol == "" {
		symbol = s.defaults.DefaultSymbol
	}

	action := types.TradeAction(payload.Action)
	if payload.Action == "" {
		action = s.defaults.DefaultAction
	}

	quantity := s.defaults.DefaultQuantity
	if payload.Quantity != nil {
		quantity = *payload.Quantity
	}

	return types.NewTradeIntent(symbol, action, quantity)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "ok",
		"ready":   s.system != nil,
		"version": version.GetVersion(),
	}

	writeJSON(w, http.StatusOK, response)
}

// ready returns a typed error when the trading system has not been wired yet.
func (s *Server) ready() error {
	if s.system == nil {
		return errors.New(errors.ErrCodeSystemNotReady, "trading system not initialized")
	}

	return nil
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	if err := s.ready(); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})

		return
	}

	orders, err := s.system.ListOrders(r.Context())
	if err != nil {
		s.log.Error("order listing failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) handleSymbolCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.ready(); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})

		return
	}

	check, err := s.system.VerifySymbol(r.Context(), mux.Vars(r)["symbol"])
	if err != nil {
		s.log.Error("symbol check failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})

		return
	}

	writeJSON(w, http.StatusOK, check)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
