package booking

import (
	"context"
	"testing"
	"time"

	"joacms/internal/catalog"
	"joacms/internal/recommend"
)

type stubRecommender struct {
	resp  *recommend.Response
	calls int
}

func (r *stubRecommender) Recommend(
	ctx context.Context,
	req recommend.Request,
) (*recommend.Response, error) {
	r.calls++
	return r.resp, nil
}

func fullSelection() *recommend.Selection {
	item := func(id int, name string, cat catalog.Category) *catalog.MenuItem {
		return &catalog.MenuItem{
			ID: id, Name: name, Category: cat, UnitPrice: catalog.UnitPrices[cat],
		}
	}
	return &recommend.Selection{
		Menu1:    item(1, "Beef Caldereta", catalog.CategoryBeef),
		Menu2:    item(2, "Chicken Adobo", catalog.CategoryChicken),
		Menu3:    item(3, "Calamares", catalog.CategorySeafood),
		Pasta:    item(4, "Pancit Canton", catalog.CategoryPasta),
		Dessert:  item(5, "Leche Flan", catalog.CategoryDessert),
		Beverage: item(6, "Red Iced Tea", catalog.CategoryBeverage),
	}
}

func futureDate() string {
	return time.Now().AddDate(0, 1, 0).Format("2006-01-02")
}

func TestCreateWithCustomerSelection(t *testing.T) {
	rec := &stubRecommender{}
	svc := NewService(NewMemoryRepository(), rec)

	appt, warnings, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:  "Maria Santos",
		ContactNumber: "09171234567",
		EventType:     "other",
		EventDate:     futureDate(),
		GuestCount:    100,
		MenuSelection: fullSelection(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.calls != 0 {
		t.Error("recommender must not run when the customer picked a menu")
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if appt.Reference == "" {
		t.Error("booking reference missing")
	}
	if appt.Status != "PENDING_DEPOSIT" {
		t.Errorf("status = %q", appt.Status)
	}
	// 100 guests: (70+60+50+40+25+25)*100 = 27000, fee 11000, 50% deposit.
	if appt.Pricing.Subtotal != 27000 {
		t.Errorf("subtotal = %v, want 27000", appt.Pricing.Subtotal)
	}
	if appt.Pricing.Total != 38000 {
		t.Errorf("total = %v, want 38000", appt.Pricing.Total)
	}
	if appt.Pricing.DownPayment != 19000 {
		t.Errorf("down payment = %v, want 19000", appt.Pricing.DownPayment)
	}
}

func TestCreateRunsRecommenderWhenMenuOmitted(t *testing.T) {
	rec := &stubRecommender{resp: &recommend.Response{
		Success:   true,
		Selection: fullSelection(),
		Fallback:  true,
		Warnings:  []string{"menu1 left empty: all eligible categories restricted"},
	}}
	svc := NewService(NewMemoryRepository(), rec)

	appt, warnings, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:   "Jose Rizal",
		EventType:      "wedding",
		EventDate:      futureDate(),
		GuestCount:     50,
		PreferenceText: "no pork please",
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.calls != 1 {
		t.Fatalf("recommender called %d times, want 1", rec.calls)
	}
	if appt.Selection == nil {
		t.Fatal("recommended menu not frozen onto the booking")
	}
	if len(warnings) != 1 {
		t.Errorf("recommender warnings not surfaced: %v", warnings)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository(), &stubRecommender{})

	cases := []struct {
		name string
		req  CreateRequest
	}{
		{"missing name", CreateRequest{
			EventType: "wedding", EventDate: futureDate(), GuestCount: 50,
		}},
		{"missing event type", CreateRequest{
			CustomerName: "A", EventDate: futureDate(), GuestCount: 50,
		}},
		{"off-menu guest count", CreateRequest{
			CustomerName: "A", EventType: "wedding", EventDate: futureDate(), GuestCount: 75,
		}},
		{"bad date format", CreateRequest{
			CustomerName: "A", EventType: "wedding", EventDate: "25-12-2026", GuestCount: 50,
		}},
		{"past date", CreateRequest{
			CustomerName: "A", EventType: "wedding", EventDate: "2020-01-01", GuestCount: 50,
		}},
		{"negative add-on", CreateRequest{
			CustomerName: "A", EventType: "wedding", EventDate: futureDate(),
			GuestCount: 50, AddOnFee: -100,
		}},
		{"unknown dish category", CreateRequest{
			CustomerName: "A", EventType: "wedding", EventDate: futureDate(),
			GuestCount: 50,
			MenuSelection: &recommend.Selection{
				Menu1: &catalog.MenuItem{ID: 1, Name: "Mystery Roast", Category: "wagyu"},
			},
		}},
		{"category outside its slot", CreateRequest{
			CustomerName: "A", EventType: "wedding", EventDate: futureDate(),
			GuestCount: 50,
			MenuSelection: &recommend.Selection{
				Beverage: &catalog.MenuItem{ID: 1, Name: "Beef Caldereta", Category: catalog.CategoryBeef},
			},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.Create(context.Background(), tc.req); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestGetRoundTrip(t *testing.T) {
	svc := NewService(NewMemoryRepository(), &stubRecommender{})

	created, _, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:  "Ana Cruz",
		EventType:     "debut",
		EventDate:     futureDate(),
		GuestCount:    80,
		MenuSelection: fullSelection(),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(context.Background(), created.Reference)
	if err != nil {
		t.Fatal(err)
	}
	if got.CustomerName != "Ana Cruz" || got.GuestCount != 80 {
		t.Errorf("stored booking mismatch: %+v", got)
	}
	// The deposit shown later is the frozen one.
	if got.Pricing.DownPayment != created.Pricing.DownPayment {
		t.Error("persisted pricing drifted from creation-time pricing")
	}

	if _, err := svc.Get(context.Background(), "no-such-reference"); err == nil {
		t.Error("unknown reference should error")
	}
}
