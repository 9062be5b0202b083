package application

import (
	"context"
	"testing"

	"github.com/lakshanchamidu/Blog-Platform/pkg/apperror"
)

func TestCategoryCreateAndList(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), nil, nil)
	ctx := context.Background()

	c, err := svc.Create(ctx, CategoryInput{Name: "Technology", Description: "Tech posts"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == "" {
		t.Fatal("category has no id")
	}

	cats, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Technology" {
		t.Fatalf("got %+v", cats)
	}
}

func TestCategoryDuplicateName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), nil, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CategoryInput{Name: "Travel"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(ctx, CategoryInput{Name: "Travel"})
	if !apperror.IsConflict(err) {
		t.Fatalf("got %v, want Conflict", err)
	}
}
