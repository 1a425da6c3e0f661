package service

import (
	"context"
	"crimson-store/internal/dto"
	"crimson-store/internal/model"
	"fmt"
	"sort"
)

const leaderboardSize = 5

// RankCustomers returns up to limit profiles with spend above zero,
// highest first. Equal totals keep their stored order.
func RankCustomers(profiles []*model.UserProfile, limit int) []*model.UserProfile {
	ranked := make([]*model.UserProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.TotalSpent.IsPositive() {
			ranked = append(ranked, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent.GreaterThan(ranked[j].TotalSpent)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopCustomer is the first profile holding the highest positive spend.
func TopCustomer(profiles []*model.UserProfile) *model.UserProfile {
	var top *model.UserProfile
	for _, p := range profiles {
		if !p.TotalSpent.IsPositive() {
			continue
		}
		if top == nil || p.TotalSpent.GreaterThan(top.TotalSpent) {
			top = p
		}
	}
	return top
}

func (s *storeServiceImpl) Leaderboard(ctx context.Context) (*dto.Leaderboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.leaderboard(ctx)
}

func (s *storeServiceImpl) leaderboard(ctx context.Context) (*dto.Leaderboard, error) {
	profiles, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	board := &dto.Leaderboard{Entries: []dto.LeaderboardEntry{}}
	for i, p := range RankCustomers(profiles, leaderboardSize) {
		board.Entries = append(board.Entries, dto.LeaderboardEntry{
			Rank:       i + 1,
			Nickname:   p.Nickname,
			TotalSpent: p.TotalSpent,
		})
	}

	if top := TopCustomer(profiles); top != nil {
		board.TopCustomer = &dto.LeaderboardEntry{
			Rank:       1,
			Nickname:   top.Nickname,
			TotalSpent: top.TotalSpent,
		}
	}
	return board, nil
}
