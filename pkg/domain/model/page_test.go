package model

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from PageStatus
		to   PageStatus
		want bool
	}{
		{"草稿可以提交送审", PageStatusDraft, PageStatusReview, true},
		{"草稿可以跳过审核直接发布", PageStatusDraft, PageStatusPublished, true},
		{"草稿不能直接归档", PageStatusDraft, PageStatusArchived, false},
		{"审核通过可以发布", PageStatusReview, PageStatusPublished, true},
		{"审核可以打回草稿", PageStatusReview, PageStatusDraft, true},
		{"审核不能直接归档", PageStatusReview, PageStatusArchived, false},
		{"已发布可以归档", PageStatusPublished, PageStatusArchived, true},
		{"重复发布被允许", PageStatusPublished, PageStatusPublished, true},
		{"已发布可以撤回草稿", PageStatusPublished, PageStatusDraft, true},
		{"归档可以恢复为草稿", PageStatusArchived, PageStatusDraft, true},
		{"归档不能直接发布", PageStatusArchived, PageStatusPublished, false},
		{"归档不能直接送审", PageStatusArchived, PageStatusReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsValidPageStatus(t *testing.T) {
	for _, s := range []PageStatus{PageStatusDraft, PageStatusReview, PageStatusPublished, PageStatusArchived} {
		if !IsValidPageStatus(s) {
			t.Errorf("IsValidPageStatus(%s) = false", s)
		}
	}
	if IsValidPageStatus("deleted") {
		t.Error("未知状态应判定为非法")
	}
}

func TestSlugPattern(t *testing.T) {
	valid := []string{"about", "case-studies", "team-2026"}
	invalid := []string{"About", "our team", "services/", "", "über"}

	for _, s := range valid {
		if !SlugPattern.MatchString(s) {
			t.Errorf("SlugPattern 应接受 %q", s)
		}
	}
	for _, s := range invalid {
		if SlugPattern.MatchString(s) {
			t.Errorf("SlugPattern 应拒绝 %q", s)
		}
	}
}
