package service

import (
	"github.com/shopspring/decimal"
	"github.com/spendguard/spendguard/pkg/entity"
)

// Pure reward arithmetic, kept free of storage so the rules are testable on
// their own.

const (
	pointsPerLevel = 300
	levelUpBonus   = 100
	badgeBonus     = 100

	wishlistAddPoints      = 5
	cooldownCompletePoints = 20
	dismissPoints          = 50
)

var savingsBadgeThreshold = decimal.NewFromInt(500)

// LevelForPoints is the single source of the leveling invariant:
// level = floor(points/300) + 1.
func LevelForPoints(totalPoints int) int {
	return totalPoints/pointsPerLevel + 1
}

// ReachedStreak fires when a streak value reaches or exceeds target for the
// first time. Written against prev/next rather than equality so a multi-unit
// jump still triggers exactly once.
func ReachedStreak(prev, next, target int) bool {
	return prev < target && next >= target
}

// CrossedSavings fires on the update that carries the saved total over the
// $500 badge threshold.
func CrossedSavings(prev, next decimal.Decimal) bool {
	return prev.LessThan(savingsBadgeThreshold) && next.GreaterThanOrEqual(savingsBadgeThreshold)
}

// BadgesForDismissal returns the badge ids a dismissal earned, given the
// stats before and after it was applied.
func BadgesForDismissal(prev, next entity.UserStats) []string {
	badges := make([]string, 0, 2)
	if CrossedSavings(prev.TotalSaved, next.TotalSaved) {
		badges = append(badges, entity.BadgeSaverSupreme)
	}
	if ReachedStreak(prev.CurrentStreak, next.CurrentStreak, 3) {
		badges = append(badges, entity.BadgeThreeDay)
	} else if ReachedStreak(prev.CurrentStreak, next.CurrentStreak, 7) {
		badges = append(badges, entity.BadgeWeekWarrior)
	}
	return badges
}

// badgeGrantDescription mirrors the wording shown in the rewards feed.
func badgeGrantDescription(badgeID string) string {
	switch badgeID {
	case entity.BadgeSaverSupreme:
		return "Saved $500 by dismissing impulses"
	case entity.BadgeThreeDay:
		return "Three days without impulse purchases"
	case entity.BadgeWeekWarrior:
		return "A full week of mindful spending"
	default:
		if b, ok := entity.BadgeByID(badgeID); ok {
			return b.Description
		}
		return badgeID
	}
}
