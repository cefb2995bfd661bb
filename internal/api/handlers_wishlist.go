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

type AddWishlistRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Category   string          `json:"category"`
	MoodTag    string          `json:"mood_tag"`
	ContextTag string          `json:"context_tag"`
	Notes      string          `json:"notes"`
}

type DismissWishlistRequest struct {
	Reason string `json:"reason"`
}

type GetWishlistResponse struct {
	UserID string                 `json:"uid"`
	Page   int                    `json:"page"`
	Limit  int                    `json:"limit"`
	Items  []*entity.WishlistItem `json:"items"`
}

func (s *Server) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add wishlist item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddWishlistRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add wishlist item error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	item, err := s.wishlistService.Add(ctx, uid, &service.AddWishlistRequest{
		Name:       req.Name,
		Price:      req.Price,
		Category:   req.Category,
		MoodTag:    req.MoodTag,
		ContextTag: req.ContextTag,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("add wishlist item error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
		case isValidationError(err):
			logger.Error("add wishlist item error: invalid item values")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("add wishlist item error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding wishlist item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, item)
	logger.Info("wishlist item added")
}

func (s *Server) GetWishlist(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get wishlist error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	pagination, page := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	items, err := s.wishlistService.GetUserItems(ctx, uid, pagination)
	if err != nil {
		logger.Error("getting wishlist error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting wishlist", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWishlistResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  pagination.Limit,
		Items:  items,
	})
	logger.Info("wishlist provided")
}

func (s *Server) PurchaseWishlistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("purchase item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("purchase item error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	item, err := s.wishlistService.Purchase(ctx, id, uid)
	if err != nil {
		s.writeWishlistActionError(w, logger, err, "purchase item")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
	logger.Info("wishlist item purchased")
}

func (s *Server) DismissWishlistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("dismiss item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("dismiss item error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	// Body is optional, a bare dismiss carries no reason
	var req DismissWishlistRequest
	defer r.Body.Close()
	_ = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	item, err := s.wishlistService.Dismiss(ctx, id, uid, req.Reason)
	if err != nil {
		s.writeWishlistActionError(w, logger, err, "dismiss item")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, item)
	logger.Info("wishlist item dismissed")
}

func (s *Server) DeleteWishlistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("item deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("item deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.wishlistService.Delete(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrItemNotFound):
			logger.Error("item deletion error: unexist item")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("item deletion error: item has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
		default:
			logger.Error("item deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting item", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": id.String()})
	logger.Info("wishlist item deleted")
}

func (s *Server) writeWishlistActionError(w http.ResponseWriter, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, errorvalues.ErrItemNotFound):
		logger.Error(action + " error: unexist item")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(action + " error: item has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "item doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrItemNotReady):
		logger.Error(action + " error: item not in review state")
		httputil.WriteErrorResponse(w, http.StatusConflict, "item is not ready for review", nil)
	case errors.Is(err, errorvalues.ErrProfileNotFound):
		logger.Error(action + " error: unexist profile")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while processing item", nil)
	}
}
