package recommend

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"joacms/internal/catalog"
	"joacms/internal/preference"
	"joacms/internal/venue"
)

// scriptedClient returns a fixed reply or error on every Complete call.
type scriptedClient struct {
	output string
	err    error
	calls  int
}

func (c *scriptedClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.calls++
	return c.output, c.err
}

// denyVerifier rejects the named dishes and accepts everything else.
type denyVerifier struct {
	repo   catalog.Repository
	denied map[string]bool
}

func (v *denyVerifier) VerifyItem(
	ctx context.Context,
	name string,
	category catalog.Category,
) (bool, error) {
	if v.denied[strings.ToLower(name)] {
		return false, nil
	}
	return v.repo.VerifyItem(ctx, name, category)
}

func newTestService(model *scriptedClient, verifier *denyVerifier) *Service {
	repo := catalog.NewMemoryRepository()
	if verifier == nil {
		verifier = &denyVerifier{repo: repo}
	} else if verifier.repo == nil {
		verifier.repo = repo
	}
	s := NewService(repo, verifier, venue.NewResolver(venue.DefaultCorpus()), model)
	s.newRNG = func() *rand.Rand { return rand.New(rand.NewSource(7)) }
	return s
}

const modelReply = `Here is the menu you asked for:
{
  "menu": {
    "menu1": "Beef Caldereta",
    "menu2": "Chicken Inasal",
    "menu3": "Calamares",
    "pasta": "Pancit Canton",
    "dessert": "Leche Flan",
    "beverage": "Red Iced Tea"
  },
  "reasoning": "A balanced Filipino spread."
}`

func TestRecommendUsesVerifiedModelPicks(t *testing.T) {
	model := &scriptedClient{output: modelReply}
	svc := newTestService(model, nil)

	resp, err := svc.Recommend(context.Background(), Request{
		EventType:  "wedding",
		GuestCount: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Fallback {
		t.Fatal("fallback flagged although the model answered")
	}
	if model.calls != 1 {
		t.Fatalf("model called %d times, want exactly 1", model.calls)
	}
	if resp.Selection.Menu1 == nil || resp.Selection.Menu1.Name != "Beef Caldereta" {
		t.Errorf("menu1 = %+v, want the model's verified pick", resp.Selection.Menu1)
	}
	if resp.Selection.Beverage == nil || resp.Selection.Beverage.Name != "Red Iced Tea" {
		t.Errorf("beverage = %+v, want the model's verified pick", resp.Selection.Beverage)
	}
	if resp.Justification == "" {
		t.Error("justification should never be empty")
	}
}

func TestRecommendDropsHallucinatedDishes(t *testing.T) {
	model := &scriptedClient{output: `{
		"menu": {
			"menu1": "Wagyu Tomahawk Tower",
			"menu2": "Chicken Adobo",
			"menu3": null,
			"pasta": null,
			"dessert": null,
			"beverage": null
		},
		"reasoning": "x"
	}`}
	svc := newTestService(model, nil)

	resp, err := svc.Recommend(context.Background(), Request{
		EventType:  "birthday",
		GuestCount: 50,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Fallback {
		t.Error("a partially usable reply is not a fallback")
	}
	if resp.Selection.Menu1 != nil && resp.Selection.Menu1.Name == "Wagyu Tomahawk Tower" {
		t.Error("hallucinated dish reached the selection")
	}
	if resp.Selection.Menu1 == nil {
		t.Error("slot must fall back to a catalog pick, not stay empty")
	}
	if resp.Selection.Menu2 == nil || resp.Selection.Menu2.Name != "Chicken Adobo" {
		t.Errorf("menu2 = %+v, want the one verified pick", resp.Selection.Menu2)
	}
}

func TestRecommendFallsBackOnModelError(t *testing.T) {
	model := &scriptedClient{err: errors.New("api quota exceeded")}
	svc := newTestService(model, nil)

	resp, err := svc.Recommend(context.Background(), Request{
		EventType:  "debut",
		GuestCount: 80,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Fallback {
		t.Error("model error must set fallback")
	}
	if model.calls != 1 {
		t.Fatalf("model called %d times, want exactly 1 attempt", model.calls)
	}
	for _, slot := range catalog.AllSlots {
		if resp.Selection.Get(slot) == nil {
			t.Errorf("fallback left slot %s empty with a full catalog", slot)
		}
	}
}

func TestRecommendFallsBackOnUnparseableOutput(t *testing.T) {
	model := &scriptedClient{output: "I'd suggest some lovely beef dishes {unbalanced"}
	svc := newTestService(model, nil)

	resp, err := svc.Recommend(context.Background(), Request{
		EventType:  "wedding",
		GuestCount: 150,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Fallback {
		t.Error("unparseable output must set fallback")
	}
	if resp.Selection == nil || resp.Selection.Menu2 == nil {
		t.Error("fallback selection must still be complete")
	}
}

func TestRecommendNilModelIsFallback(t *testing.T) {
	repo := catalog.NewMemoryRepository()
	svc := NewService(repo, &denyVerifier{repo: repo}, venue.NewResolver(venue.DefaultCorpus()), nil)
	svc.newRNG = func() *rand.Rand { return rand.New(rand.NewSource(7)) }

	resp, err := svc.Recommend(context.Background(), Request{
		EventType:  "wedding",
		GuestCount: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Fallback {
		t.Error("no configured model must set fallback")
	}
}

func TestRecommendSubstitutesOnCatalogDrift(t *testing.T) {
	// The store no longer recognizes the model's menu1 pick.
	model := &scriptedClient{output: modelReply}
	verifier := &denyVerifier{denied: map[string]bool{"beef caldereta": true}}
	svc := newTestService(model, verifier)

	resp, err := svc.Recommend(context.Background(), Request{
		EventType:  "wedding",
		GuestCount: 100,
	})
	if err != nil {
		t.Fatal(err)
	}
	m1 := resp.Selection.Menu1
	if m1 == nil {
		t.Fatal("menu1 should be substituted, not dropped")
	}
	if m1.Name == "Beef Caldereta" {
		t.Error("store-rejected dish survived verification")
	}
	if m1.Category != catalog.CategoryBeef && m1.Category != catalog.CategoryPork {
		t.Errorf("substitute category %s outside the slot", m1.Category)
	}
}

func TestVerifyAgainstStoreIsIdempotent(t *testing.T) {
	verifier := &denyVerifier{denied: map[string]bool{"beef caldereta": true}}
	svc := newTestService(&scriptedClient{output: modelReply}, verifier)

	profile := preference.Parse("")
	rng := rand.New(rand.NewSource(7))
	pools := FilterCatalog(catalog.DefaultCatalog(), profile, rng)
	sel := BuildSelection(pools, profile, rng)

	svc.verifyAgainstStore(context.Background(), sel, pools, profile)
	first := *sel
	svc.verifyAgainstStore(context.Background(), sel, pools, profile)

	for _, slot := range catalog.AllSlots {
		a, b := first.Get(slot), sel.Get(slot)
		if (a == nil) != (b == nil) || (a != nil && a.Name != b.Name) {
			t.Fatalf("slot %s changed on re-verification: %+v -> %+v", slot, a, b)
		}
	}
}

func TestRecommendRestrictionHonoredOverModel(t *testing.T) {
	// The model ignores the no-pork instruction; menu1 is beef-only by
	// the time pools are built, so a pork name must not pass validation.
	model := &scriptedClient{output: `{
		"menu": {
			"menu1": "Lechon Kawali",
			"menu2": "Chicken Adobo",
			"menu3": "Calamares",
			"pasta": "Pancit Canton",
			"dessert": "Leche Flan",
			"beverage": "Red Iced Tea"
		},
		"reasoning": "x"
	}`}
	svc := newTestService(model, nil)

	resp, err := svc.Recommend(context.Background(), Request{
		EventType:      "wedding",
		GuestCount:     100,
		PreferenceText: "no pork please, halal guests",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Selection.Menu1 != nil && resp.Selection.Menu1.Category == catalog.CategoryPork {
		t.Fatalf("restricted pork dish %q selected", resp.Selection.Menu1.Name)
	}
}
