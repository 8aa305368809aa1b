package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"Shelf/models"
	"Shelf/pkg/log"
	"Shelf/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type seedTag struct {
	Name  string
	Color string
}

var demoTags = []seedTag{
	{"Electronics", "#3b82f6"},
	{"Fashion", "#ef4444"},
	{"Home & Garden", "#10b981"},
	{"Beauty", "#f59e0b"},
	{"Sports", "#8b5cf6"},
	{"Best Seller", "#06b6d4"},
	{"New Arrival", "#f97316"},
	{"Sale", "#ef4444"},
	{"Premium", "#84cc16"},
	{"Trending", "#ec4899"},
}

type seedSetting struct {
	Key, Value, Type, Group string
}

var demoSettings = []seedSetting{
	{"site_name", "ShopeeDeals Pro", "text", "general"},
	{"site_description", "Your ultimate destination for the best Shopee deals and product recommendations", "textarea", "general"},
	{"meta_title", "ShopeeDeals Pro - Best Deals & Product Reviews", "text", "seo"},
	{"meta_description", "Discover the best deals on Shopee with our curated product recommendations, detailed reviews, and exclusive affiliate offers.", "textarea", "seo"},
	{"affiliate_disclaimer", "This site contains affiliate links. We may earn a commission when you purchase through these links at no additional cost to you.", "textarea", "general"},
}

var (
	demoAdjectives = []string{"Wireless", "Portable", "Smart", "Ergonomic", "Compact", "Premium", "Classic", "Ultra", "Eco", "Deluxe"}
	demoNouns      = []string{"Mouse", "Keyboard", "Headphones", "Backpack", "Lamp", "Blender", "Sneakers", "Watch", "Speaker", "Bottle", "Jacket", "Charger"}
)

// Seeder 写入演示数据：标签、已发布与草稿商品以及站点配置
type Seeder struct {
	Products IProductService
	Tags     ITagService
	Settings ISettingService
}

type SeedResult struct {
	Tags      int
	Published int
	Drafts    int
	Settings  int
}

// Run 使用固定随机种子，重复执行会因 slug 冲突失败
func (s *Seeder) Run(ctx context.Context, seed int64) (*SeedResult, error) {
	rnd := rand.New(rand.NewSource(seed))
	res := &SeedResult{}

	tagIDs := make([]uint64, 0, len(demoTags))
	for _, t := range demoTags {
		tag, err := s.Tags.Create(ctx, &types.TagRequest{Name: t.Name, Color: t.Color})
		if err != nil {
			return res, fmt.Errorf("seed tag %s: %w", t.Name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
		res.Tags++
	}

	used := make(map[string]struct{})
	for i := 0; i < 30; i++ {
		status := models.ProductStatusPublished
		maxTags := 4
		if i >= 24 {
			status = models.ProductStatusDraft
			maxTags = 3
		}
		req := demoProduct(rnd, used, status)
		req.Tags = pickTags(rnd, tagIDs, 1+rnd.Intn(maxTags))
		if _, err := s.Products.Create(ctx, req); err != nil {
			return res, fmt.Errorf("seed product %s: %w", req.Name, err)
		}
		if status == models.ProductStatusPublished {
			res.Published++
		} else {
			res.Drafts++
		}
	}

	for _, st := range demoSettings {
		v := st.Value
		if err := s.Settings.Set(ctx, st.Key, &v, st.Type, st.Group); err != nil {
			return res, fmt.Errorf("seed setting %s: %w", st.Key, err)
		}
		res.Settings++
	}

	log.L.Info("seed finished",
		zap.Int("tags", res.Tags),
		zap.Int("published", res.Published),
		zap.Int("drafts", res.Drafts),
		zap.Int("settings", res.Settings),
	)
	return res, nil
}

func demoProduct(rnd *rand.Rand, used map[string]struct{}, status string) *types.ProductRequest {
	var name string
	for {
		name = demoAdjectives[rnd.Intn(len(demoAdjectives))] + " " + demoNouns[rnd.Intn(len(demoNouns))]
		if _, ok := used[name]; !ok {
			break
		}
		name = fmt.Sprintf("%s %d", name, len(used)+1)
		if _, ok := used[name]; !ok {
			break
		}
	}
	used[name] = struct{}{}

	price := decimal.NewFromInt(int64(1000 + rnd.Intn(98900))).Shift(-2)
	original := price.Add(decimal.NewFromInt(int64(500 + rnd.Intn(19500))).Shift(-2))
	rating := decimal.NewFromInt(int64(30 + rnd.Intn(21))).Shift(-1)
	metaTitle := name + " - Best Price on Shopee"

	return &types.ProductRequest{
		Name:          name,
		Price:         &price,
		OriginalPrice: &original,
		Rating:        &rating,
		ReviewCount:   10 + rnd.Intn(4991),
		AffiliateLink: "https://shopee.com/product/" + uuid.NewString(),
		MainImage:     fmt.Sprintf("https://picsum.photos/400/400?random=%d", 1+rnd.Intn(1000)),
		GalleryImages: []string{
			fmt.Sprintf("https://picsum.photos/400/400?random=%d", 1001+rnd.Intn(1000)),
			fmt.Sprintf("https://picsum.photos/400/400?random=%d", 2001+rnd.Intn(1000)),
			fmt.Sprintf("https://picsum.photos/400/400?random=%d", 3001+rnd.Intn(1000)),
		},
		Description:     demoDescription(name),
		MetaTitle:       &metaTitle,
		MetaDescription: "Get the best deals on " + name + " with great discounts and fast shipping. Shop now on Shopee!",
		Status:          status,
		SortOrder:       rnd.Intn(101),
	}
}

func demoDescription(name string) string {
	return strings.Join([]string{
		"# Product Overview",
		"The " + name + " combines everyday practicality with a build quality that lasts.",
		"",
		"## Key Features",
		"- Reliable performance for daily use",
		"- Lightweight and easy to carry",
		"- Backed by thousands of positive reviews",
		"",
		"## Specifications",
		"See the marketplace listing for full dimensions and materials.",
		"",
		"## Why Choose This Product?",
		"It balances price and quality better than most alternatives in its class.",
		"",
		"## Customer Reviews",
		"Buyers consistently praise its value for money.",
	}, "\n")
}

// pickTags 随机选取 n 个不重复标签
func pickTags(rnd *rand.Rand, ids []uint64, n int) []uint64 {
	if n > len(ids) {
		n = len(ids)
	}
	perm := rnd.Perm(len(ids))
	out := make([]uint64, 0, n)
	for _, i := range perm[:n] {
		out = append(out, ids[i])
	}
	return out
}
