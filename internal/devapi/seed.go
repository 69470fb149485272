package devapi

import (
	"context"
	"fmt"

	"codeberg.org/foodmap/client/foodmap/restaurants"
	"codeberg.org/foodmap/client/foodmap/users"
	"codeberg.org/foodmap/client/internal/auth"
)

var seedRestaurants = []restaurants.Input{
	{
		Name:            "송림식당",
		Category:        "한식",
		Location:        "경기 수원시 영통구 월드컵로193번길 21",
		PriceRange:      "7,000-10,000원",
		Rating:          4.5,
		Description:     "아주대 학생들이 즐겨 찾는 **제육볶음** 맛집.",
		RecommendedMenu: []string{"제육볶음", "김치찌개", "된장찌개"},
		Likes:           42,
	},
	{
		Name:            "별미떡볶이",
		Category:        "분식",
		Location:        "아주대 정문 앞",
		PriceRange:      "3,000-6,000원",
		Rating:          4.2,
		Description:     "매콤달콤한 떡볶이와 튀김 세트.",
		RecommendedMenu: []string{"떡볶이", "모둠튀김", "순대"},
		Likes:           35,
	},
	{
		Name:            "샐러디 아주대점",
		Category:        "카페",
		Location:        "아주대 후문",
		PriceRange:      "8,000-12,000원",
		Rating:          4.0,
		Description:     "가볍게 먹기 좋은 샐러드와 랩.",
		RecommendedMenu: []string{"콥 샐러드", "치킨 랩"},
		Likes:           18,
	},
	{
		Name:            "홍콩반점",
		Category:        "중식",
		Location:        "아주대 삼거리",
		PriceRange:      "6,000-9,000원",
		Rating:          3.9,
		Description:     "빠르게 나오는 짬뽕과 탕수육.",
		RecommendedMenu: []string{"짬뽕", "탕수육", "짜장면"},
		Likes:           27,
	},
	{
		Name:            "스시히로",
		Category:        "일식",
		Location:        "영통역 인근",
		PriceRange:      "12,000-20,000원",
		Rating:          4.6,
		Description:     "점심 초밥 세트가 인기.",
		RecommendedMenu: []string{"점심 초밥 세트", "우동"},
		Likes:           31,
	},
}

// creates the admin account and sample restaurants
func (s *Server) seed(ctx context.Context) error {
	hash, err := auth.HashPassword(s.config.AdminPassword)
	if err != nil {
		return fmt.Errorf("admin password: %w", err)
	}

	if _, err := s.userRepo.Create(ctx, "관리자", s.config.AdminEmail, hash, users.RoleAdmin); err != nil {
		return fmt.Errorf("admin user: %w", err)
	}

	for _, in := range seedRestaurants {
		if _, err := s.restaurantRepo.Create(ctx, in); err != nil {
			return fmt.Errorf("restaurant %q: %w", in.Name, err)
		}
	}

	return nil
}
