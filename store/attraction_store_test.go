package store_test

import (
	"context"
	"testing"
	"time"

	"safarihub/models"
	"safarihub/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAttraction(t *testing.T, s *store.Store, name string) models.Attraction {
	t.Helper()

	attraction := models.Attraction{Name: name, Type: models.Wildlife}
	require.Equal(t, store.KindNone, s.CreateAttraction(context.Background(), adminPrincipal, &attraction))
	return attraction
}

func TestLinkAttractionDuplicatePairConflicts(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Big Five", false, true, time.Now())
	attraction := makeAttraction(t, s, "Crater Lake")

	link := models.TourAttraction{TourID: tour.ID, AttractionID: attraction.ID, VisitOrder: 1}
	require.Equal(t, store.KindNone, s.LinkAttraction(ctx, adminPrincipal, &link))

	dup := models.TourAttraction{TourID: tour.ID, AttractionID: attraction.ID, VisitOrder: 2}
	assert.Equal(t, store.KindConflict, s.LinkAttraction(ctx, adminPrincipal, &dup))
}

func TestTourAttractionsVisitOrder(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Big Five", false, true, time.Now())

	first := makeAttraction(t, s, "Waterfall")
	second := makeAttraction(t, s, "Crater Lake")
	third := makeAttraction(t, s, "Rock Paintings")

	require.Equal(t, store.KindNone, s.LinkAttraction(ctx, adminPrincipal, &models.TourAttraction{TourID: tour.ID, AttractionID: second.ID, VisitOrder: 2}))
	require.Equal(t, store.KindNone, s.LinkAttraction(ctx, adminPrincipal, &models.TourAttraction{TourID: tour.ID, AttractionID: third.ID, VisitOrder: 3}))
	require.Equal(t, store.KindNone, s.LinkAttraction(ctx, adminPrincipal, &models.TourAttraction{TourID: tour.ID, AttractionID: first.ID, VisitOrder: 1}))

	links, kind := s.TourAttractions(ctx, tour.ID)
	require.Equal(t, store.KindNone, kind)
	require.Len(t, links, 3)
	assert.Equal(t, "Waterfall", links[0].Attraction.Name)
	assert.Equal(t, "Crater Lake", links[1].Attraction.Name)
	assert.Equal(t, "Rock Paintings", links[2].Attraction.Name)
}

func TestAvailableToursForAttractionExcludesLinked(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	attraction := makeAttraction(t, s, "Crater Lake")

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	linkedIDs := map[uuid.UUID]bool{}
	for i := 0; i < 10; i++ {
		tour := makeTour(t, db, category.ID, "Tour "+string(rune('A'+i)), false, true, base.Add(time.Duration(i)*time.Hour))
		if i < 3 {
			link := models.TourAttraction{TourID: tour.ID, AttractionID: attraction.ID, VisitOrder: i + 1}
			require.Equal(t, store.KindNone, s.LinkAttraction(ctx, adminPrincipal, &link))
			linkedIDs[tour.ID] = true
		}
	}
	makeTour(t, db, category.ID, "Dormant", false, false, base.Add(24*time.Hour))

	tours, kind := s.AvailableToursForAttraction(ctx, adminPrincipal, attraction.ID)
	require.Equal(t, store.KindNone, kind)
	require.Len(t, tours, 7)
	for _, tour := range tours {
		assert.False(t, linkedIDs[tour.ID], "linked tour %s should be excluded", tour.Title)
		assert.True(t, tour.Active)
	}
}

func TestAvailableToursForAttractionRequiresAdmin(t *testing.T) {
	s, _ := newTestStore(t)

	user := store.Principal{UserID: uuid.New(), Role: models.RoleUser}
	tours, kind := s.AvailableToursForAttraction(context.Background(), user, uuid.New())
	assert.Equal(t, store.KindForbidden, kind)
	assert.Empty(t, tours)
}

func TestUpdateAttractionLink(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Big Five", false, true, time.Now())
	attraction := makeAttraction(t, s, "Crater Lake")

	link := models.TourAttraction{TourID: tour.ID, AttractionID: attraction.ID, VisitOrder: 1}
	require.Equal(t, store.KindNone, s.LinkAttraction(ctx, adminPrincipal, &link))

	order := 5
	duration := "2 hours"
	require.Equal(t, store.KindNone, s.UpdateAttractionLink(ctx, adminPrincipal, link.ID, &order, &duration))

	links, kind := s.TourAttractions(ctx, tour.ID)
	require.Equal(t, store.KindNone, kind)
	require.Len(t, links, 1)
	assert.Equal(t, 5, links[0].VisitOrder)
	assert.Equal(t, "2 hours", links[0].Duration)

	assert.Equal(t, store.KindNotFound, s.UpdateAttractionLink(ctx, adminPrincipal, uuid.New(), &order, nil))
}

func TestUnlinkAttraction(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	category := makeCategory(t, db, "Safari")
	tour := makeTour(t, db, category.ID, "Big Five", false, true, time.Now())
	attraction := makeAttraction(t, s, "Crater Lake")

	link := models.TourAttraction{TourID: tour.ID, AttractionID: attraction.ID, VisitOrder: 1}
	require.Equal(t, store.KindNone, s.LinkAttraction(ctx, adminPrincipal, &link))

	assert.Equal(t, store.KindNone, s.UnlinkAttraction(ctx, adminPrincipal, link.ID))
	assert.Equal(t, store.KindNotFound, s.UnlinkAttraction(ctx, adminPrincipal, link.ID))

	links, kind := s.TourAttractions(ctx, tour.ID)
	require.Equal(t, store.KindNone, kind)
	assert.Empty(t, links)
}
