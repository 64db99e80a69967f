package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ad402/payverify/internal/paymentproc"
	"github.com/ad402/payverify/internal/payverify"
	"github.com/ad402/payverify/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds a verification request body.
const maxBodyBytes = 64 << 10

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req payverify.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid JSON")
		return
	}

	if !s.allow(w, r, s.walletRule, req.ExpectedPayer, "Too many requests from this wallet address") {
		return
	}

	outcome, err := s.payments.Process(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, paymentproc.ErrPaymentAlreadyRecorded):
			writeError(w, http.StatusConflict, codeAlreadyRecorded, "Transaction was already used as a payment")
		case errors.Is(err, payverify.ErrNotFound):
			writeError(w, http.StatusNotFound, codeNotFound, "Transaction not found")
		case errors.Is(err, payverify.ErrRPC):
			writeError(w, http.StatusServiceUnavailable, codeChainUnavailable, "Blockchain node unavailable, try again later")
		default:
			logger.Error(r.Context(), "error processing payment",
				"payment.network", req.Network,
				"payment.tx_hash", req.TransactionHash,
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, codeInternal, "Failed to process payment")
		}
		return
	}

	status := http.StatusOK
	switch outcome.Result.Reason {
	case payverify.ReasonInvalidRequest, payverify.ReasonUnsupportedNetwork:
		status = http.StatusBadRequest
	}

	writeJSON(w, status, outcome)
}

func (s *Server) handlePayment(w http.ResponseWriter, r *http.Request) {
	network, hash := chi.URLParam(r, "network"), chi.URLParam(r, "hash")

	payment, err := s.payments.Payment(r.Context(), network, hash)
	if err != nil {
		if errors.Is(err, paymentproc.ErrPaymentNotFound) {
			writeError(w, http.StatusNotFound, codeNotFound, "Payment not found")
			return
		}

		logger.Error(r.Context(), "error loading payment",
			"payment.network", network,
			"payment.tx_hash", hash,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "Failed to load payment")
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

type confirmationsResponse struct {
	Confirmations    uint64 `json:"confirmations"`
	MinConfirmations uint64 `json:"minConfirmations"`
	Confirmed        bool   `json:"confirmed"`
}

func (s *Server) handleConfirmations(w http.ResponseWriter, r *http.Request) {
	network, hash := chi.URLParam(r, "network"), chi.URLParam(r, "hash")

	minConfirmations := uint64(payverify.DefaultMinConfirmations)
	if v := r.URL.Query().Get("min"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequest, "min must be a non-negative integer")
			return
		}
		if n > 0 {
			minConfirmations = n
		}
	}

	confirmations, err := s.verifier.Confirmations(r.Context(), hash, network)
	if err != nil {
		switch {
		case errors.Is(err, payverify.ErrInvalidTransactionHash):
			writeError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid transaction hash")
		case errors.Is(err, payverify.ErrUnsupportedNetwork):
			writeError(w, http.StatusBadRequest, codeUnsupportedNetwork, "Unsupported network: "+network)
		case errors.Is(err, payverify.ErrNotFound):
			writeError(w, http.StatusNotFound, codeNotFound, "Transaction not found")
		default:
			logger.Warn(r.Context(), "error counting confirmations",
				"payment.network", network,
				"payment.tx_hash", hash,
				"error", err,
			)
			writeError(w, http.StatusServiceUnavailable, codeChainUnavailable, "Blockchain node unavailable, try again later")
		}
		return
	}

	writeJSON(w, http.StatusOK, confirmationsResponse{
		Confirmations:    confirmations,
		MinConfirmations: minConfirmations,
		Confirmed:        confirmations >= minConfirmations,
	})
}

type networkResponse struct {
	payverify.Network
	Rails []payverify.Rail `json:"rails"`
}

func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	networks := s.verifier.Networks()

	resp := make([]networkResponse, 0, len(networks))
	for _, n := range networks {
		resp = append(resp, networkResponse{Network: n, Rails: n.Rails()})
	}

	writeJSON(w, http.StatusOK, map[string]any{"networks": resp})
}
