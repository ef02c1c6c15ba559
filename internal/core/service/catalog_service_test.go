package service

import (
	"context"
	"strings"
	"testing"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

func TestCatalogService_Add_GeneratesID(t *testing.T) {
	store := newStubStore()
	svc := NewCatalogService(store, discardLogger)

	created, err := svc.Add(context.Background(), ports.AddServiceInput{
		Title:       "Аэросъемка участка",
		Description: "Облет участка на дроне",
		Price:       20000,
		Category:    "Недвижимость",
		Details:     []string{"До 10 минут исходников"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(created.ID, "srv-") {
		t.Errorf("service id format wrong: %q", created.ID)
	}
	if created.Title != "Аэросъемка участка" || created.Price != 20000 {
		t.Errorf("fields not carried over: %+v", created)
	}
	if len(store.services) != 1 {
		t.Fatalf("expected 1 stored service, got %d", len(store.services))
	}
}

func TestCatalogService_ListAndCategories_Delegate(t *testing.T) {
	store := newStubStore()
	store.services = []domain.Service{
		{ID: "1", Title: "A", Category: "Спорт"},
		{ID: "2", Title: "B", Category: "Спорт"},
		{ID: "3", Title: "C", Category: "Свадьба"},
	}
	svc := NewCatalogService(store, discardLogger)

	services, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 3 {
		t.Errorf("expected 3 services, got %d", len(services))
	}

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("expected 2 distinct categories, got %v", categories)
	}
}
