package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendguard/spendguard/internal/observability"
	"github.com/spendguard/spendguard/internal/repository"
	"github.com/spendguard/spendguard/pkg/entity"
)

const (
	defaultInsightModel = "sonar"

	snapshotWishlistLimit  = 50
	snapshotPurchasesLimit = 10
	snapshotTaxLimit       = 10
	snapshotRewardsLimit   = 5
)

// InsightService forwards a user's chat history to a completions endpoint,
// prepending a system prompt built from their tracked data. It holds no
// domain logic and failures here never affect the rest of the app.
type InsightService struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client

	usersRepo     repository.UsersRepositoryI
	wishlistRepo  repository.WishlistRepositoryI
	purchasesRepo repository.PurchasesRepositoryI
	taxRepo       repository.ADHDTaxRepositoryI
	rewardsRepo   repository.RewardsRepositoryI
}

type InsightConfig struct {
	Endpoint string
	APIKey   string
	Model    string
}

type InsightRepos struct {
	Users     repository.UsersRepositoryI
	Wishlist  repository.WishlistRepositoryI
	Purchases repository.PurchasesRepositoryI
	Tax       repository.ADHDTaxRepositoryI
	Rewards   repository.RewardsRepositoryI
}

func NewInsightService(cfg InsightConfig, repos InsightRepos) *InsightService {
	if repos.Users == nil || repos.Wishlist == nil || repos.Purchases == nil || repos.Tax == nil || repos.Rewards == nil {
		log.Fatal("on insight service provided nil repos")
	}
	model := cfg.Model
	if model == "" {
		model = defaultInsightModel
	}
	return &InsightService{
		endpoint:      cfg.Endpoint,
		apiKey:        cfg.APIKey,
		model:         model,
		usersRepo:     repos.Users,
		wishlistRepo:  repos.Wishlist,
		purchasesRepo: repos.Purchases,
		taxRepo:       repos.Tax,
		rewardsRepo:   repos.Rewards,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage map[string]any `json:"usage"`
}

// UpstreamError carries the status the completions endpoint answered with so
// the handler can pass it through.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completions endpoint error: status %d: %s", e.Status, e.Body)
}

func (is *InsightService) Chat(ctx context.Context, uid uuid.UUID, messages []ChatMessage) (*InsightReply, error) {
	if len(messages) == 0 {
		return nil, errors.New("validation error: messages array is required")
	}
	if is.apiKey == "" {
		return nil, errors.New("insight api key not configured")
	}

	prompt, err := is.buildSnapshotPrompt(ctx, uid)
	if err != nil {
		observability.InsightRequests.WithLabelValues("snapshot_error").Inc()
		return nil, err
	}

	enhanced := make([]ChatMessage, 0, len(messages)+1)
	enhanced = append(enhanced, ChatMessage{Role: "system", Content: prompt})
	enhanced = append(enhanced, conversationOnly(messages)...)

	body, err := sonic.Marshal(completionRequest{
		Model:       is.model,
		Messages:    enhanced,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, errors.New("marshalling completion request error: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, is.endpoint, strings.NewReader(string(body)))
	if err != nil {
		return nil, errors.New("building completion request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+is.apiKey)

	resp, err := is.httpClient.Do(req)
	if err != nil {
		observability.InsightRequests.WithLabelValues("transport_error").Inc()
		return nil, errors.New("calling completions endpoint error: " + err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("reading completion response error: " + err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		observability.InsightRequests.WithLabelValues("upstream_error").Inc()
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	var parsed completionResponse
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.New("unmarshalling completion response error: " + err.Error())
	}
	reply := "No response from AI"
	if len(parsed.Choices) > 0 && parsed.Choices[0].Message.Content != "" {
		reply = parsed.Choices[0].Message.Content
	}
	observability.InsightRequests.WithLabelValues("ok").Inc()
	return &InsightReply{
		Message: reply,
		Usage:   parsed.Usage,
	}, nil
}

// conversationOnly keeps user messages and the assistant replies that follow
// them, dropping anything malformed the client may have accumulated.
func conversationOnly(messages []ChatMessage) []ChatMessage {
	out := make([]ChatMessage, 0, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case "user":
			out = append(out, msg)
		case "assistant":
			if i > 0 && messages[i-1].Role == "user" {
				out = append(out, msg)
			}
		}
	}
	return out
}

func (is *InsightService) buildSnapshotPrompt(ctx context.Context, uid uuid.UUID) (string, error) {
	profile, err := is.usersRepo.GetProfile(ctx, uid)
	if err != nil {
		return "", errors.New("users repository error: " + err.Error())
	}
	wishlist, err := is.wishlistRepo.GetByUserID(ctx, uid, snapshotWishlistLimit, 0)
	if err != nil {
		return "", errors.New("wishlist repository error: " + err.Error())
	}
	purchases, err := is.purchasesRepo.GetByUserID(ctx, uid, snapshotPurchasesLimit, 0)
	if err != nil {
		return "", errors.New("purchases repository error: " + err.Error())
	}
	taxItems, err := is.taxRepo.GetByUserID(ctx, uid, snapshotTaxLimit, 0)
	if err != nil {
		return "", errors.New("adhd tax repository error: " + err.Error())
	}
	rewards, err := is.rewardsRepo.GetByUserID(ctx, uid, snapshotRewardsLimit, 0)
	if err != nil {
		return "", errors.New("rewards repository error: " + err.Error())
	}
	return BuildInsightPrompt(profile, wishlist, purchases, taxItems, rewards), nil
}

// BuildInsightPrompt renders the user's tracked data into the system prompt.
// Exported for tests, it does no I/O.
func BuildInsightPrompt(profile *entity.Profile, wishlist []*entity.WishlistItem, purchases []*entity.Purchase, taxItems []*entity.ADHDTaxItem, rewards []*entity.Reward) string {
	var b strings.Builder

	b.WriteString("=== USER PROFILE ===\n")
	fmt.Fprintf(&b, "Level: %d\n", profile.Stats.CurrentLevel)
	fmt.Fprintf(&b, "Current Streak: %d days\n", profile.Stats.CurrentStreak)
	fmt.Fprintf(&b, "Longest Streak: %d days\n", profile.Stats.LongestStreak)
	fmt.Fprintf(&b, "Total Points: %d\n", profile.Stats.TotalPointsEarned)
	fmt.Fprintf(&b, "Total Saved: $%s\n", profile.Stats.TotalSaved.StringFixed(2))
	fmt.Fprintf(&b, "Total Spent: $%s\n", profile.Stats.TotalSpent.StringFixed(2))
	fmt.Fprintf(&b, "ADHD Tax Total: $%s\n", profile.Stats.ADHDTaxTotal.StringFixed(2))

	b.WriteString("\n=== USER SETTINGS ===\n")
	fmt.Fprintf(&b, "Impulse Threshold: $%s\n", profile.Settings.ImpulseThreshold.StringFixed(2))
	fmt.Fprintf(&b, "Cooldown Period: %d hours\n", profile.Settings.CooldownHours)
	fmt.Fprintf(&b, "Monthly Budget: $%s\n", profile.Settings.MonthlyBudget.StringFixed(2))
	fmt.Fprintf(&b, "Currency: %s\n", profile.Settings.Currency)

	if len(profile.Badges) > 0 {
		b.WriteString("\n=== EARNED BADGES ===\n")
		b.WriteString(strings.Join(profile.Badges, ", "))
		b.WriteString("\n")
	}

	if len(wishlist) > 0 {
		b.WriteString("\n=== CURRENT WISHLIST ===\n")
		for i, item := range wishlist {
			status := fmt.Sprintf("(%s)", item.Status)
			if item.Status == entity.StatusCoolingDown {
				status = fmt.Sprintf("(cooling down until %s)", item.CooldownEndsAt.Format("2006-01-02"))
			}
			fmt.Fprintf(&b, "%d. %s - $%s %s\n", i+1, item.Name, item.Price.StringFixed(2), status)
			if item.Category != "" {
				fmt.Fprintf(&b, "   Category: %s\n", item.Category)
			}
			if item.MoodTag != "" {
				fmt.Fprintf(&b, "   Mood when added: %s\n", item.MoodTag)
			}
			if item.ContextTag != "" {
				fmt.Fprintf(&b, "   Context: %s\n", item.ContextTag)
			}
			if item.Notes != "" {
				fmt.Fprintf(&b, "   Notes: %s\n", item.Notes)
			}
		}
	}

	if len(purchases) > 0 {
		b.WriteString("\n=== RECENT PURCHASES (Last 10) ===\n")
		for i, p := range purchases {
			tag := "[PLANNED]"
			if p.WasImpulse {
				tag = "[IMPULSE]"
			}
			fmt.Fprintf(&b, "%d. %s - $%s %s on %s\n", i+1, p.Name, p.Amount.StringFixed(2), tag, p.Date.Format("2006-01-02"))
			if p.Category != "" {
				fmt.Fprintf(&b, "   Category: %s\n", p.Category)
			}
			if p.MoodTag != "" {
				fmt.Fprintf(&b, "   Mood: %s\n", p.MoodTag)
			}
		}
	}

	if len(taxItems) > 0 {
		b.WriteString("\n=== ADHD TAX ITEMS (Last 10) ===\n")
		for i, item := range taxItems {
			fmt.Fprintf(&b, "%d. %s: %s - $%s on %s\n", i+1, item.Type, item.Description, item.Amount.StringFixed(2), item.Date.Format("2006-01-02"))
		}
	}

	if len(rewards) > 0 {
		b.WriteString("\n=== RECENT ACHIEVEMENTS (Last 5) ===\n")
		for i, r := range rewards {
			switch r.Type {
			case entity.RewardPoints:
				fmt.Fprintf(&b, "%d. +%d points: %s (%s)\n", i+1, r.Points, r.Description, r.EarnedAt.Format("2006-01-02"))
			case entity.RewardBadge:
				fmt.Fprintf(&b, "%d. Badge: %s (%s)\n", i+1, r.Description, r.EarnedAt.Format("2006-01-02"))
			}
		}
	}

	if len(purchases) > 0 {
		b.WriteString("\n=== SPENDING SUMMARY ===\n")
		byCategory := map[string]decimal.Decimal{}
		byMood := map[string]decimal.Decimal{}
		impulseCount, plannedCount := 0, 0
		for _, p := range purchases {
			if p.Category != "" {
				byCategory[p.Category] = byCategory[p.Category].Add(p.Amount)
			}
			if p.MoodTag != "" {
				byMood[p.MoodTag] = byMood[p.MoodTag].Add(p.Amount)
			}
			if p.WasImpulse {
				impulseCount++
			} else {
				plannedCount++
			}
		}
		fmt.Fprintf(&b, "Total Purchases Tracked: %d\n", len(purchases))
		fmt.Fprintf(&b, "Impulse: %d | Planned: %d\n", impulseCount, plannedCount)
		writeAmountBreakdown(&b, "Spending by Category:", byCategory)
		writeAmountBreakdown(&b, "Spending by Mood:", byMood)
	}

	return `You are a supportive financial assistant for SpendGuard, an app designed to help ADHD adults practice mindful spending.

Respond based only on the user data provided below. Do not use external sources or general statistics. Be encouraging, non-judgmental, and specific: reference actual purchases, wishlist items, streaks, points, and savings from the data. If asked about something not in the data, say so and suggest tracking it in SpendGuard.

===== USER'S SPENDGUARD DATA (YOUR ONLY DATA SOURCE) =====
` + b.String() + `
===== END OF SPENDGUARD DATA =====

Base your entire response on the data between the equal signs above.`
}

func writeAmountBreakdown(b *strings.Builder, title string, amounts map[string]decimal.Decimal) {
	if len(amounts) == 0 {
		return
	}
	keys := make([]string, 0, len(amounts))
	for k := range amounts {
		keys = append(keys, k)
	}
	// Largest first, ties by name for stable output
	sort.Slice(keys, func(i, j int) bool {
		if !amounts[keys[i]].Equal(amounts[keys[j]]) {
			return amounts[keys[i]].GreaterThan(amounts[keys[j]])
		}
		return keys[i] < keys[j]
	})
	b.WriteString("\n" + title + "\n")
	for _, k := range keys {
		fmt.Fprintf(b, "  %s: $%s\n", k, amounts[k].StringFixed(2))
	}
}

// SetHTTPClient replaces the transport. Used by tests.
func (is *InsightService) SetHTTPClient(c *http.Client) {
	is.httpClient = c
}

// SetEndpoint replaces the completions URL. Used by tests.
func (is *InsightService) SetEndpoint(url string) {
	is.endpoint = url
}
