package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/spendguard/spendguard/internal/error_values"
	"github.com/spendguard/spendguard/internal/service"
	"github.com/spendguard/spendguard/pkg/entity"
	"github.com/spendguard/spendguard/pkg/httputil"
)

type GetRewardsResponse struct {
	UserID  string           `json:"uid"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Rewards []*entity.Reward `json:"rewards"`
}

type InsightChatRequest struct {
	Messages []service.ChatMessage `json:"messages"`
}

func (s *Server) GetRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get rewards error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	pagination, page := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	rewards, err := s.rewardsService.GetUserRewards(ctx, uid, pagination)
	if err != nil {
		logger.Error("getting rewards error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting rewards", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRewardsResponse{
		UserID:  uid.String(),
		Page:    page,
		Limit:   pagination.Limit,
		Rewards: rewards,
	})
	logger.Info("rewards provided")
}

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get badges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	badges, err := s.rewardsService.GetBadges(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			logger.Error("get badges error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
			return
		}
		logger.Error("getting badges error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting badges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"badges": badges})
	logger.Info("badges provided")
}

func (s *Server) InsightChat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("insight chat error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req InsightChatRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("insight chat error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if len(req.Messages) == 0 {
		logger.Error("insight chat error: empty messages")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "messages array is required", nil)
		return
	}
	// The upstream call dominates this budget, snapshot reads are quick
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*45)
	defer cancel()
	reply, err := s.insightService.Chat(ctx, uid, req.Messages)
	if err != nil {
		var upstream *service.UpstreamError
		switch {
		case errors.As(err, &upstream):
			logger.Error("insight chat error: upstream error", slog.Int("status", upstream.Status))
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "AI service error", nil)
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("insight chat error: unexist profile")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
		default:
			logger.Error("insight chat error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting insights", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reply)
	logger.Info("insight provided")
}
