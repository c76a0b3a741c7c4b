package recommend

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"time"

	"joacms/internal/catalog"
	"joacms/internal/core"
	"joacms/internal/llm"
	"joacms/internal/preference"
	"joacms/internal/venue"
)

// Service is the recommendation orchestrator: it bridges the
// deterministic local pipeline with the external generative model and
// guarantees the final selection is always catalog-valid.
type Service struct {
	repo     catalog.Repository
	verifier core.ItemVerifier
	resolver *venue.Resolver
	model    llm.Client

	// newRNG builds the request-scoped random source. Overridable in
	// tests; concurrent requests never share one.
	newRNG func() *rand.Rand
}

func NewService(
	repo catalog.Repository,
	verifier core.ItemVerifier,
	resolver *venue.Resolver,
	model llm.Client,
) *Service {
	return &Service{
		repo:     repo,
		verifier: verifier,
		resolver: resolver,
		model:    model,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Recommend runs one full recommendation cycle. The model is invoked
// at most once; every model failure (missing credentials, transport
// error, unparseable JSON) is recoverable and flips the response to
// the local fallback path with fallback=true.
func (s *Service) Recommend(ctx context.Context, req Request) (*Response, error) {
	profile := preference.Parse(req.PreferenceText)
	rng := s.newRNG()

	cat, err := s.repo.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	pools := FilterCatalog(cat, profile, rng)
	resolution := s.resolver.Resolve(
		req.Province, req.City, req.Barangay, req.PreferenceText, rng,
	)

	preferred, reply := s.askModel(ctx, req, pools, profile, resolution.Guidance)

	sel := BuildSelectionPreferring(pools, profile, rng, preferred)
	s.verifyAgainstStore(ctx, sel, pools, profile)

	return &Response{
		Success:   true,
		Selection: sel,
		Venue:     resolution.Venue,
		Justification: BuildJustification(
			req.EventType, req.GuestCount, sel, profile, resolution.Venue,
		),
		Fallback: reply == nil,
		Warnings: unfilledWarnings(sel),
	}, nil
}

// askModel performs the single model attempt and maps its reply to
// pool-validated per-slot preferences. A nil reply means fallback.
func (s *Service) askModel(
	ctx context.Context,
	req Request,
	pools catalog.Catalog,
	profile *preference.Profile,
	venueGuidance string,
) (map[catalog.Slot]string, *llm.MenuReply) {

	if s.model == nil {
		return nil, nil
	}

	prompt := llm.BuildRecommendationPrompt(
		req.EventType,
		req.GuestCount,
		pools,
		profile,
		venueGuidance,
		req.Variation,
	)

	output, err := s.model.Complete(ctx, prompt)
	if err != nil {
		log.Printf("RECOMMEND model unavailable, using local fallback: %v", err)
		return nil, nil
	}

	reply, err := llm.ParseMenuReply(output)
	if err != nil {
		log.Printf("RECOMMEND unusable model output, using local fallback: %v", err)
		return nil, nil
	}

	return s.validateAgainstPools(reply, pools, profile), reply
}

// validateAgainstPools is the first trust boundary: every dish name the
// model returned must be a member of the slot's filtered candidate pool
// (case-insensitive, trimmed). Non-members are dropped, never patched.
func (s *Service) validateAgainstPools(
	reply *llm.MenuReply,
	pools catalog.Catalog,
	profile *preference.Profile,
) map[catalog.Slot]string {

	preferred := make(map[catalog.Slot]string)
	for slotKey, name := range reply.SlotNames() {
		slot := catalog.Slot(slotKey)
		if findByName(slotCandidates(slot, pools, profile), name) == nil {
			log.Printf("RECOMMEND dropped unknown dish %q for %s", name, slot)
			continue
		}
		preferred[slot] = name
	}
	return preferred
}

// verifyAgainstStore is the second, stricter trust boundary: each
// chosen dish is re-checked against the authoritative catalog store.
// On disagreement (stale in-memory catalog) the dish is replaced by
// the first store-verified candidate for the slot; re-verifying an
// already-verified selection never changes it.
func (s *Service) verifyAgainstStore(
	ctx context.Context,
	sel *Selection,
	pools catalog.Catalog,
	profile *preference.Profile,
) {
	for _, slot := range catalog.AllSlots {
		item := sel.Get(slot)
		if item == nil {
			continue
		}

		ok, err := s.verifier.VerifyItem(ctx, item.Name, item.Category)
		if err != nil {
			// Store unreachable: the filtered pool already vouched for
			// the dish, keep it. Single attempt, no retry.
			log.Printf("RECOMMEND store check failed for %q: %v", item.Name, err)
			continue
		}
		if ok {
			continue
		}

		log.Printf("RECOMMEND catalog drift: %q missing from store, substituting", item.Name)
		sel.set(slot, s.substituteFromStore(ctx, slot, pools, profile))
		if sel.Get(slot) == nil {
			sel.Unfilled = append(sel.Unfilled, slot)
		}
	}
}

// substituteFromStore deterministically picks the lowest-ID candidate
// the store still recognizes.
func (s *Service) substituteFromStore(
	ctx context.Context,
	slot catalog.Slot,
	pools catalog.Catalog,
	profile *preference.Profile,
) *catalog.MenuItem {

	candidates := append([]catalog.MenuItem(nil), slotCandidates(slot, pools, profile)...)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})

	for _, item := range candidates {
		ok, err := s.verifier.VerifyItem(ctx, item.Name, item.Category)
		if err != nil || !ok {
			continue
		}
		found := item
		return &found
	}
	return nil
}
