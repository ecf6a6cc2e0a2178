package larp

import (
	"testing"
	"time"

	model "larpit/larp-directory/internal/model/larp"
	"larpit/larp-directory/internal/testutils"
	"larpit/larp-directory/pkg/response"
)

// TestGetLarpByIDAndAlias 详情查询：ID 和别名两条路
func TestGetLarpByIDAndAlias(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewService(NewRepository(db))

	starts := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	created := testutils.CreateTestLarp(db, testutils.WithAlias("velmun-varjot-2026"))
	db.Model(created).Update("starts_at", starts)

	db.Create(&model.Link{LarpID: created.ID, Type: model.LinkTypeHomepage, URL: "https://example.com"})

	byID, bizErr := service.GetLarp(created.ID)
	if bizErr != nil {
		t.Fatalf("GetLarp: %v", bizErr.Msg)
	}
	if byID.Name != created.Name {
		t.Errorf("Name = %q", byID.Name)
	}
	if byID.StartsAt == nil || *byID.StartsAt != "2026-06-12" {
		t.Errorf("StartsAt = %v, want calendar date string", byID.StartsAt)
	}
	if len(byID.Links) != 1 {
		t.Errorf("Links = %v", byID.Links)
	}

	byAlias, bizErr := service.GetLarpByAlias("velmun-varjot-2026")
	if bizErr != nil {
		t.Fatalf("GetLarpByAlias: %v", bizErr.Msg)
	}
	if byAlias.ID != created.ID {
		t.Errorf("alias lookup returned ID %d", byAlias.ID)
	}
}

// TestGetLarpNotFound 不存在的条目
func TestGetLarpNotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewService(NewRepository(db))

	if _, bizErr := service.GetLarp(999999); bizErr == nil {
		t.Fatal("missing larp should fail")
	} else if bizErr.Code != response.NotFound {
		t.Errorf("error code = %d, want NotFound", bizErr.Code)
	}

	if _, bizErr := service.GetLarpByAlias("no-such-alias"); bizErr == nil {
		t.Fatal("missing alias should fail")
	}
}

// TestGetLarpRelatedListings 详情包含条目间关系，两个方向都能看到对端
func TestGetLarpRelatedListings(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewService(NewRepository(db))

	original := testutils.CreateTestLarp(db, testutils.WithName("Velmun varjot"))
	sequel := testutils.CreateTestLarp(db, testutils.WithName("Velmun perintö"))
	db.Create(&model.RelatedLarp{LeftID: original.ID, RightID: sequel.ID, Type: model.RelatedLarpSequel})

	fromLeft, bizErr := service.GetLarp(original.ID)
	if bizErr != nil {
		t.Fatalf("GetLarp: %v", bizErr.Msg)
	}
	if len(fromLeft.RelatedLarps) != 1 {
		t.Fatalf("RelatedLarps = %v, want 1 entry", fromLeft.RelatedLarps)
	}
	if got := fromLeft.RelatedLarps[0]; got.ID != sequel.ID || got.Name != sequel.Name || got.Type != model.RelatedLarpSequel {
		t.Errorf("related entry = %+v", got)
	}

	fromRight, bizErr := service.GetLarp(sequel.ID)
	if bizErr != nil {
		t.Fatalf("GetLarp reverse: %v", bizErr.Msg)
	}
	if len(fromRight.RelatedLarps) != 1 || fromRight.RelatedLarps[0].ID != original.ID {
		t.Errorf("reverse RelatedLarps = %v, want the original entry", fromRight.RelatedLarps)
	}

	lone := testutils.CreateTestLarp(db, testutils.WithName("Odysseus"))
	detail, bizErr := service.GetLarp(lone.ID)
	if bizErr != nil {
		t.Fatalf("GetLarp lone: %v", bizErr.Msg)
	}
	if len(detail.RelatedLarps) != 0 {
		t.Errorf("lone larp RelatedLarps = %v, want empty", detail.RelatedLarps)
	}
}

// TestListLarpsSearch 列表分页与名称搜索
func TestListLarpsSearch(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewService(NewRepository(db))

	testutils.CreateTestLarp(db, testutils.WithName("Velmun varjot"))
	testutils.CreateTestLarp(db, testutils.WithName("Odysseus"))
	testutils.CreateTestLarp(db, testutils.WithName("Velmun perintö"))

	all, bizErr := service.ListLarps("", 1, 20)
	if bizErr != nil {
		t.Fatalf("ListLarps: %v", bizErr.Msg)
	}
	if all.Total != 3 {
		t.Errorf("Total = %d, want 3", all.Total)
	}

	matched, bizErr := service.ListLarps("velmun", 1, 20)
	if bizErr != nil {
		t.Fatalf("ListLarps search: %v", bizErr.Msg)
	}
	if matched.Total != 2 {
		t.Errorf("search Total = %d, want 2", matched.Total)
	}

	paged, bizErr := service.ListLarps("", 1, 2)
	if bizErr != nil {
		t.Fatalf("ListLarps paged: %v", bizErr.Msg)
	}
	if len(paged.Larps) != 2 || paged.Total != 3 {
		t.Errorf("page of 2: len=%d total=%d", len(paged.Larps), paged.Total)
	}
}
