package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/internal/service"
	"github.com/spendguard/spendguard/pkg/entity"
	"github.com/spendguard/spendguard/pkg/httputil"
)

type LogPurchaseRequest struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	WasImpulse bool            `json:"was_impulse"`
	MoodTag    string          `json:"mood_tag"`
	ContextTag string          `json:"context_tag"`
	Notes      string          `json:"notes"`
}

type GetPurchasesResponse struct {
	UserID    string             `json:"uid"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	Purchases []*entity.Purchase `json:"purchases"`
}

type AddTaxItemRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes"`
}

type GetTaxItemsResponse struct {
	UserID string                `json:"uid"`
	Page   int                   `json:"page"`
	Limit  int                   `json:"limit"`
	Items  []*entity.ADHDTaxItem `json:"items"`
}

func (s *Server) LogPurchase(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log purchase error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogPurchaseRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log purchase error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	purchase, err := s.purchasesService.Log(ctx, uid, &service.LogPurchaseRequest{
		Name:       req.Name,
		Amount:     req.Amount,
		Category:   req.Category,
		WasImpulse: req.WasImpulse,
		MoodTag:    req.MoodTag,
		ContextTag: req.ContextTag,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCooldownRequired):
			logger.Error("log purchase error: amount above impulse threshold")
			httputil.WriteErrorResponse(w, http.StatusConflict, "amount exceeds impulse threshold, add item to wishlist instead", nil)
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("log purchase error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
		case isValidationError(err):
			logger.Error("log purchase error: invalid purchase values")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("log purchase error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging purchase", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, purchase)
	logger.Info("purchase logged")
}

func (s *Server) GetPurchases(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get purchases error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	pagination, page := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	purchases, err := s.purchasesService.GetUserPurchases(ctx, uid, pagination)
	if err != nil {
		logger.Error("getting purchases error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting purchases", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetPurchasesResponse{
		UserID:    uid.String(),
		Page:      page,
		Limit:     pagination.Limit,
		Purchases: purchases,
	})
	logger.Info("purchases provided")
}

func (s *Server) AddTaxItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add tax item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddTaxItemRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add tax item error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	item, err := s.taxService.Add(ctx, uid, &service.AddTaxItemRequest{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("add tax item error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
		case isValidationError(err):
			logger.Error("add tax item error: invalid item values")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("add tax item error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding tax item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, item)
	logger.Info("tax item added")
}

func (s *Server) GetTaxItems(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get tax items error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	pagination, page := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	items, err := s.taxService.GetUserItems(ctx, uid, pagination)
	if err != nil {
		logger.Error("getting tax items error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tax items", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTaxItemsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  pagination.Limit,
		Items:  items,
	})
	logger.Info("tax items provided")
}

func (s *Server) DeleteTaxItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("tax item deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("tax item deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.taxService.Delete(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaxItemNotFound):
			logger.Error("tax item deletion error: unexist item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("tax item deletion error: item has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("tax item deletion error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
		default:
			logger.Error("tax item deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting tax item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": id.String()})
	logger.Info("tax item deleted")
}
