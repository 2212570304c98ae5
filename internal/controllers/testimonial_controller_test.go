package controllers_test

import (
	"net/http"
	"testing"

	"github.com/factorypro/site_backend/internal/models"
)

func createTestimonial(t *testing.T, r http.Handler, ck *http.Cookie, body map[string]any) models.Testimonial {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/testimonials", body, ck)
	if w.Code != http.StatusCreated {
		t.Fatalf("create testimonial: expected 201, got %d - %s", w.Code, w.Body.String())
	}
	var testimonial models.Testimonial
	decodeBody(t, w, &testimonial)
	return testimonial
}

func TestTestimonialCreateDefaults(t *testing.T) {
	r := newTestRouter(t, newTestDB(t), t.TempDir())
	ck := adminCookie(t, r)

	got := createTestimonial(t, r, ck, map[string]any{
		"content": "Great product.",
		"author":  "Somchai Jaidee",
		"rating":  5,
	})
	if got.ID == "" {
		t.Error("expected server-assigned id")
	}
	if got.FullContent != "Great product." {
		t.Errorf("fullContent should default to content, got %q", got.FullContent)
	}
	if got.AvatarURL != "/placeholder.svg?height=50&width=50" {
		t.Errorf("expected placeholder avatar, got %q", got.AvatarURL)
	}
}

func TestTestimonialRatingBounds(t *testing.T) {
	r := newTestRouter(t, newTestDB(t), t.TempDir())
	ck := adminCookie(t, r)

	for _, rating := range []int{0, 6, -1} {
		w := doJSON(t, r, http.MethodPost, "/api/testimonials", map[string]any{
			"content": "x", "author": "y", "rating": rating,
		}, ck)
		if w.Code != http.StatusBadRequest {
			t.Errorf("rating %d: expected 400, got %d", rating, w.Code)
		}
	}

	got := createTestimonial(t, r, ck, map[string]any{"content": "x", "author": "y", "rating": 1})
	w := doJSON(t, r, http.MethodPatch, "/api/testimonials/"+got.ID, map[string]any{"rating": 9}, ck)
	if w.Code != http.StatusBadRequest {
		t.Errorf("patch rating 9: expected 400, got %d", w.Code)
	}
}

func TestTestimonialUpdateRoundTrip(t *testing.T) {
	r := newTestRouter(t, newTestDB(t), t.TempDir())
	ck := adminCookie(t, r)
	created := createTestimonial(t, r, ck, map[string]any{
		"content": "Original", "author": "Author", "company": "Co", "rating": 3,
	})

	w := doJSON(t, r, http.MethodPatch, "/api/testimonials/"+created.ID, map[string]any{"rating": 4}, ck)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/testimonials/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on public read, got %d", w.Code)
	}
	var got models.Testimonial
	decodeBody(t, w, &got)
	if got.Rating != 4 {
		t.Errorf("expected patched rating 4, got %d", got.Rating)
	}
	if got.Content != "Original" || got.Author != "Author" || got.Company != "Co" {
		t.Errorf("unpatched fields changed: %+v", got)
	}
}

func TestTestimonialDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(t, db, t.TempDir())
	ck := adminCookie(t, r)
	created := createTestimonial(t, r, ck, map[string]any{"content": "x", "author": "y", "rating": 2})

	if w := doJSON(t, r, http.MethodDelete, "/api/testimonials/does-not-exist", nil, ck); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if n := countRows(t, db, &models.Testimonial{}); n != 1 {
		t.Errorf("failed delete changed the table: %d rows", n)
	}

	if w := doJSON(t, r, http.MethodDelete, "/api/testimonials/"+created.ID, nil, ck); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if n := countRows(t, db, &models.Testimonial{}); n != 0 {
		t.Errorf("expected empty table, got %d rows", n)
	}
}
